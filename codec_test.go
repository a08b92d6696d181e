package frost

import (
	"bytes"
	"testing"

	"github.com/frostline/frost/suites/ed25519"
	"github.com/frostline/frost/suites/pallas"
)

func TestKeyPackageJSONRoundTrip(t *testing.T) {
	for _, suite := range []Suite{ed25519.New(), pallas.New()} {
		t.Run(suite.Name(), func(t *testing.T) {
			kps, _, err := generateKeyShares(suite, 2, 3, detReader(1))
			if err != nil {
				t.Fatal(err)
			}

			data, err := kps[0].EncodeJSON()
			if err != nil {
				t.Fatal(err)
			}
			decoded, err := DecodeKeyPackage(suite, data)
			if err != nil {
				t.Fatal(err)
			}
			if decoded.Identifier != kps[0].Identifier {
				t.Errorf("identifier round-trip failed: got %d, want %d", decoded.Identifier, kps[0].Identifier)
			}
			if decoded.MinThreshold != kps[0].MinThreshold {
				t.Errorf("min_threshold round-trip failed: got %d, want %d", decoded.MinThreshold, kps[0].MinThreshold)
			}
			if !bytes.Equal(decoded.SigningShare.Bytes(), kps[0].SigningShare.Bytes()) {
				t.Error("signing share did not round-trip")
			}
			if !bytes.Equal(decoded.VerifyingShare.Bytes(), kps[0].VerifyingShare.Bytes()) {
				t.Error("verifying share did not round-trip")
			}
			if !bytes.Equal(decoded.VerifyingKey.Bytes(), kps[0].VerifyingKey.Bytes()) {
				t.Error("verifying key did not round-trip")
			}

			redata, err := decoded.EncodeJSON()
			if err != nil {
				t.Fatal(err)
			}
			if string(redata) != string(data) {
				t.Error("re-encoding a decoded key package did not reproduce the original bytes")
			}
		})
	}
}

func TestSignatureCodecRoundTrip(t *testing.T) {
	for _, suite := range []Suite{ed25519.New(), pallas.New()} {
		t.Run(suite.Name(), func(t *testing.T) {
			sig := Signature{R: suite.Base(), Z: mustIdentifierScalar(t, suite, 7)}

			decoded, err := DecodeSignature(suite, sig.Bytes())
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(decoded.Bytes(), sig.Bytes()) {
				t.Error("signature did not round-trip through DecodeSignature")
			}

			decodedHex, err := DecodeSignatureHex(suite, sig.Hex())
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(decodedHex.Bytes(), sig.Bytes()) {
				t.Error("signature did not round-trip through DecodeSignatureHex")
			}

			if encodeHex(sig.Bytes()) != sig.Hex() {
				t.Error("Hex() did not match encodeHex(Bytes())")
			}
		})
	}
}

func mustIdentifierScalar(t *testing.T, suite Suite, id Identifier) Scalar {
	t.Helper()
	sc, err := suite.IdentifierScalar(id)
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

func TestEncodeDecodeHex(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		b := []byte{0x01, 0xab, 0xff, 0x00}
		s := encodeHex(b)
		if s != "01abff00" {
			t.Errorf("encodeHex = %q, want %q", s, "01abff00")
		}
		got, err := decodeHex(s, len(b))
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != string(b) {
			t.Errorf("decodeHex round-trip mismatch")
		}
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := decodeHex("ab", 2)
		if err == nil {
			t.Fatal("expected error")
		}
		if aerr, ok := err.(*Error); !ok || aerr.Code != InvalidEncoding {
			t.Fatalf("got %v, want InvalidEncoding", err)
		}
	})

	t.Run("rejects uppercase as non-canonical", func(t *testing.T) {
		_, err := decodeHex("AB", 1)
		if err == nil {
			t.Fatal("expected error")
		}
		if aerr, ok := err.(*Error); !ok || aerr.Code != InvalidEncoding {
			t.Fatalf("got %v, want InvalidEncoding", err)
		}
	})

	t.Run("rejects malformed hex", func(t *testing.T) {
		_, err := decodeHex("zz", 1)
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestDecodeIdentifier(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, err := decodeIdentifier(42)
		if err != nil {
			t.Fatal(err)
		}
		if id != Identifier(42) {
			t.Errorf("decodeIdentifier(42) = %d, want 42", id)
		}
	})

	t.Run("zero is invalid", func(t *testing.T) {
		_, err := decodeIdentifier(0)
		if err == nil {
			t.Fatal("expected error")
		}
		if aerr, ok := err.(*Error); !ok || aerr.Code != InvalidIdentifier {
			t.Fatalf("got %v, want InvalidIdentifier", err)
		}
	})

	t.Run("out of range is invalid", func(t *testing.T) {
		_, err := decodeIdentifier(256)
		if err == nil {
			t.Fatal("expected error")
		}
		if aerr, ok := err.(*Error); !ok || aerr.Code != InvalidIdentifier {
			t.Fatalf("got %v, want InvalidIdentifier", err)
		}
	})
}

func FuzzDecodeHex(f *testing.F) {
	f.Add("01abff00", 4)
	f.Add("", 0)
	f.Add("zz", 1)

	f.Fuzz(func(t *testing.T, s string, wantLen int) {
		b, err := decodeHex(s, wantLen)
		if err != nil {
			return
		}
		if encodeHex(b) != s {
			t.Errorf("decodeHex(%q) accepted a non-canonical encoding", s)
		}
	})
}
