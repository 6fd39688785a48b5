package main

import "github.com/sjzar/mailstat/cmd/mailstat"

func main() {
	mailstat.Execute()
}
