package main

import (
	"github.com/jericosergio/buzzer-morse-code-tester-ep32/cmd"
	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/recovery"
)

func main() {
	defer recovery.HandlePanic()
	cmd.Execute()
}
