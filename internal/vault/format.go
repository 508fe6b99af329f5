package vault

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// On-disk layout, current revision:
//
//	magic   4 bytes  "LKEY"
//	version 1 byte   0x02
//	time    4 bytes  uint32 LE  (argon2id passes)
//	memory  4 bytes  uint32 LE  (argon2id memory, KiB)
//	threads 1 byte   uint8      (argon2id lanes)
//	salt    16 bytes
//	nonce   12 bytes
//	rest             AES-256-GCM ciphertext with the 16-byte tag appended
//
// Files that do not begin with the magic are headerless blobs from the old
// format: raw ciphertext+tag, implicit zero nonce, unsalted SHA-256 key.
const (
	storeMagic    = "LKEY"
	formatVersion = 0x02

	saltSize  = 16
	nonceSize = 12
	tagSize   = 16

	headerSize = len(storeMagic) + 1 + 4 + 4 + 1 + saltSize + nonceSize
)

type header struct {
	time    uint32
	memory  uint32
	threads uint8
	salt    []byte
	nonce   []byte
}

func encodeHeader(h header) []byte {
	buf := make([]byte, 0, headerSize)
	buf = append(buf, storeMagic...)
	buf = append(buf, formatVersion)
	buf = binary.LittleEndian.AppendUint32(buf, h.time)
	buf = binary.LittleEndian.AppendUint32(buf, h.memory)
	buf = append(buf, h.threads)
	buf = append(buf, h.salt...)
	buf = append(buf, h.nonce...)
	return buf
}

// parseBlob splits a store file into its header and ciphertext. A nil
// header with no error means the file predates the versioned format.
func parseBlob(data []byte) (*header, []byte, error) {
	if !bytes.HasPrefix(data, []byte(storeMagic)) {
		return nil, data, nil
	}
	if len(data) < headerSize {
		return nil, nil, fmt.Errorf("store header truncated at %d bytes: %w", len(data), ErrCorrupt)
	}
	if v := data[len(storeMagic)]; v != formatVersion {
		return nil, nil, fmt.Errorf("unsupported store version %d: %w", v, ErrCorrupt)
	}

	off := len(storeMagic) + 1
	h := &header{
		time:    binary.LittleEndian.Uint32(data[off:]),
		memory:  binary.LittleEndian.Uint32(data[off+4:]),
		threads: data[off+8],
	}
	off += 9
	h.salt = data[off : off+saltSize]
	off += saltSize
	h.nonce = data[off : off+nonceSize]
	off += nonceSize

	ciphertext := data[off:]
	if len(ciphertext) < tagSize {
		return nil, nil, fmt.Errorf("ciphertext shorter than auth tag: %w", ErrCorrupt)
	}
	return h, ciphertext, nil
}
