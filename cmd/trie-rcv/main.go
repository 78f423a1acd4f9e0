package main

import (
	"github.com/milselarch/trie-rcv/cmd/trie-rcv/cmd"
)

func main() {
	cmd.Execute()
}
