package main

import "github.com/leakwarden/leakwarden/cmd/leakwarden"

func main() { leakwarden.Execute() }
