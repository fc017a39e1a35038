package main

import (
	"github.com/safafin/go-loan-api/cmd/admin/cmd"
)

func main() {
	cmd.Execute()
}
