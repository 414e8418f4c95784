// Package main provides the fieldset CLI for declarative record validation.
package main

func main() {
	Execute()
}
