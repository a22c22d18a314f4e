// Command reginno converts .reg registry exports into Inno Setup [Registry]
// sections.
package main

func main() {
	execute()
}
