package main

import "stock-sync/cmd"

func main() {
	cmd.Execute()
}
