package main

import "github.com/LumpsRGood/cateringcalulator/cmd/catering"

func main() {
	catering.Execute()
}
