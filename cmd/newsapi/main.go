package main

import "ncnews/cmd/newsapi/command"

func main() {
	command.Execute()
}
