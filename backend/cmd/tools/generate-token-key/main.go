package main

import (
	"flag"
	"fmt"

	"github.com/itchan-dev/forumapi/shared/utils"
)

func main() {
	length := flag.Int("length", 64, "key length in characters")
	flag.Parse()

	fmt.Println("=================================================")
	fmt.Println("  JWT signing keys (HS256)")
	fmt.Println("=================================================")
	fmt.Println()
	fmt.Println("Add these to your config/private.yaml:")
	fmt.Printf("access_token_key: \"%s\"\n", utils.GenerateTokenKey(*length))
	fmt.Printf("refresh_token_key: \"%s\"\n", utils.GenerateTokenKey(*length))
	fmt.Println()
	fmt.Println("IMPORTANT:")
	fmt.Println("- Use different keys for access and refresh tokens!")
	fmt.Println("- Rotating a key logs out every user holding tokens signed with it")
	fmt.Println("- Never commit these keys to version control!")
	fmt.Println("=================================================")
}
