package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// RecipientKind discriminates RecipientRef.
type RecipientKind string

const (
	RecipientAddress RecipientKind = "address"
	RecipientContact RecipientKind = "contact"
)

// RecipientRef is the canonical transfer target: either a raw wallet address
// or a contact identifier known to the backend.
type RecipientRef struct {
	kind    RecipientKind
	address solana.PublicKey
	contact string
}

// NewAddressRecipient validates a base58 wallet address.
func NewAddressRecipient(address string) (RecipientRef, error) {
	pk, err := solana.PublicKeyFromBase58(strings.TrimSpace(address))
	if err != nil {
		return RecipientRef{}, fmt.Errorf("invalid wallet address: %w", ErrInvalidFormat)
	}
	return RecipientRef{kind: RecipientAddress, address: pk}, nil
}

// NewContactRecipient wraps a contact identifier.
func NewContactRecipient(id string) (RecipientRef, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return RecipientRef{}, fmt.Errorf("empty contact id: %w", ErrInvalidFormat)
	}
	return RecipientRef{kind: RecipientContact, contact: id}, nil
}

func (r RecipientRef) Kind() RecipientKind { return r.kind }

// IsZero reports whether the ref was never set.
func (r RecipientRef) IsZero() bool { return r.kind == "" }

// Address returns the 32 address bytes; ok is false for contacts.
func (r RecipientRef) Address() (addr []byte, ok bool) {
	if r.kind != RecipientAddress {
		return nil, false
	}
	return r.address.Bytes(), true
}

// Contact returns the contact id; ok is false for addresses.
func (r RecipientRef) Contact() (id string, ok bool) {
	if r.kind != RecipientContact {
		return "", false
	}
	return r.contact, true
}

// String is the canonical textual form, e.g. "address:<base58>" or "contact:<id>".
func (r RecipientRef) String() string {
	switch r.kind {
	case RecipientAddress:
		return string(RecipientAddress) + ":" + r.address.String()
	case RecipientContact:
		return string(RecipientContact) + ":" + r.contact
	default:
		return ""
	}
}

type recipientJSON struct {
	Kind  RecipientKind `json:"kind"`
	Value string        `json:"value"`
}

func (r RecipientRef) MarshalJSON() ([]byte, error) {
	out := recipientJSON{Kind: r.kind}
	switch r.kind {
	case RecipientAddress:
		out.Value = r.address.String()
	case RecipientContact:
		out.Value = r.contact
	}
	return json.Marshal(out)
}

func (r *RecipientRef) UnmarshalJSON(data []byte) error {
	var in recipientJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	var (
		ref RecipientRef
		err error
	)
	switch in.Kind {
	case RecipientAddress:
		ref, err = NewAddressRecipient(in.Value)
	case RecipientContact:
		ref, err = NewContactRecipient(in.Value)
	default:
		err = fmt.Errorf("unknown recipient kind %q: %w", in.Kind, ErrInvalidFormat)
	}
	if err != nil {
		return err
	}
	*r = ref
	return nil
}
