package main

import "github.com/adiwarna/maintenance-management/cmd"

func main() {
	cmd.Execute()
}
