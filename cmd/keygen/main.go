package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/dmitrymomot/fieldcrypt/pkg/config"
	"github.com/dmitrymomot/fieldcrypt/pkg/fieldcrypt"
)

func main() {
	raw := flag.Bool("raw", false, "print only the key")
	check := flag.Bool("check", false, "validate FIELD_ENCRYPTION_KEY from the environment instead of generating a key")
	flag.Parse()

	if *check {
		var cfg fieldcrypt.Config
		if err := config.Load(&cfg); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if _, err := fieldcrypt.NewFromEncodedKey(cfg.EncryptionKey); err != nil {
			log.Fatalf("FIELD_ENCRYPTION_KEY is not usable: %v", err)
		}
		fmt.Println("FIELD_ENCRYPTION_KEY is a valid 32-byte key")
		return
	}

	encodedKey, err := fieldcrypt.GenerateKey()
	if err != nil {
		log.Fatalf("Failed to generate encryption key: %v", err)
	}

	if *raw {
		fmt.Println(encodedKey)
		return
	}

	fmt.Printf("Generated Encoded Encryption Key (for FIELD_ENCRYPTION_KEY env var): \n---\n%s\n---\n", encodedKey)
}
