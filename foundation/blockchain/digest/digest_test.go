package digest_test

import (
	"strings"
	"testing"

	"github.com/educhain/educhain/foundation/blockchain/digest"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

type payload struct {
	Number uint64 `json:"number"`
	Nonce  uint64 `json:"nonce"`
	Value  string `json:"value"`
}

func TestHash(t *testing.T) {
	t.Log("Given the need to hash arbitrary content.")
	{
		t.Logf("\tWhen hashing the same content twice.")
		{
			p := payload{Number: 1, Nonce: 42, Value: "transfer"}

			h1 := digest.Hash(p)
			h2 := digest.Hash(p)

			if h1 != h2 {
				t.Fatalf("\t%s\tShould get the same hash for the same content: %s != %s", failed, h1, h2)
			}
			t.Logf("\t%s\tShould get the same hash for the same content.", success)

			if len(h1) != digest.HashLen {
				t.Fatalf("\t%s\tShould get a hash of length %d: got %d", failed, digest.HashLen, len(h1))
			}
			t.Logf("\t%s\tShould get a hash of length %d.", success, digest.HashLen)

			if !strings.HasPrefix(h1, "0x") {
				t.Fatalf("\t%s\tShould get a 0x prefixed hash: %s", failed, h1)
			}
			t.Logf("\t%s\tShould get a 0x prefixed hash.", success)
		}

		t.Logf("\tWhen changing a single field.")
		{
			p := payload{Number: 1, Nonce: 42, Value: "transfer"}
			h1 := digest.Hash(p)

			p.Nonce++
			if h2 := digest.Hash(p); h1 == h2 {
				t.Fatalf("\t%s\tShould get a different hash after a nonce change.", failed)
			}
			t.Logf("\t%s\tShould get a different hash after a nonce change.", success)

			p.Nonce--
			p.Value = "Transfer"
			if h2 := digest.Hash(p); h1 == h2 {
				t.Fatalf("\t%s\tShould get a different hash after a value change.", failed)
			}
			t.Logf("\t%s\tShould get a different hash after a value change.", success)
		}
	}
}

func TestZeroHash(t *testing.T) {
	t.Log("Given the need for a zero hash sentinel.")
	{
		if len(digest.ZeroHash) != digest.HashLen {
			t.Fatalf("\t%s\tShould have a zero hash of length %d: got %d", failed, digest.HashLen, len(digest.ZeroHash))
		}
		t.Logf("\t%s\tShould have a zero hash of length %d.", success, digest.HashLen)

		if strings.Trim(digest.ZeroHash[2:], "0") != "" {
			t.Fatalf("\t%s\tShould have only zero digits after the prefix.", failed)
		}
		t.Logf("\t%s\tShould have only zero digits after the prefix.", success)
	}
}
