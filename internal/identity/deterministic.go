package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must prefix keys by kind to keep identifiers of different kinds apart.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// DocumentUUID identifies a source document by its exact bytes. The source
// is digested first so normalization inside UUID cannot fold documents that
// differ only in case or surrounding whitespace.
func DocumentUUID(source []byte) uuid.UUID {
	sum := sha256.Sum256(source)
	return UUID("go-mdx:document:" + hex.EncodeToString(sum[:]))
}

// ComponentUUID identifies a registered component name.
func ComponentUUID(name string) uuid.UUID {
	return UUID("go-mdx:component:" + strings.TrimSpace(name))
}
