package main

import "github.com/rafavit29-crypto/app-calorix/cmd/calorix"

func main() {
	calorix.Execute()
}
