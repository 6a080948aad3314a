package main

import "budgetwise/cmd"

func main() {
	cmd.Execute()
}
