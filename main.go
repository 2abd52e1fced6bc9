package main

import "github.com/Rorical/NearCounter/cmd"

func main() {
	cmd.Execute()
}
