package main

import "github.com/hellofresh/catalog-seeder/cmd"

func main() {
	cmd.Execute()
}
