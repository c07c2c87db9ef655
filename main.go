package main

import "mentoring_backend/cmd"

func main() {
	cmd.Execute()
}
