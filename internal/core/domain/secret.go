package domain

import "fmt"

const (
	SecretSeed SecretField = iota
	SecretMnemonic
	SecretAccessToken
)

const (
	FlagAlreadyBackup SecretFlag = iota
)

var (
	ErrUnknownSecretField = fmt.Errorf("unknown secret field")
	ErrUnknownSecretFlag  = fmt.Errorf("unknown secret flag")

	secretFieldKeys = map[SecretField]string{
		SecretSeed:        "seed",
		SecretMnemonic:    "mnemonic",
		SecretAccessToken: "access_token",
	}
	secretFlagKeys = map[SecretFlag]string{
		FlagAlreadyBackup: "is_already_backup",
	}
)

// SecretField identifies one of the string secrets held by the secure store.
type SecretField int

// Key returns the storage key of the field, or an empty string if the field
// is not one of the known ones.
func (f SecretField) Key() string {
	return secretFieldKeys[f]
}

func (f SecretField) String() string {
	return f.Key()
}

// IsValid returns whether the field is one of the known ones.
func (f SecretField) IsValid() bool {
	_, ok := secretFieldKeys[f]
	return ok
}

// SecretFields returns all the known secret fields.
func SecretFields() []SecretField {
	return []SecretField{SecretSeed, SecretMnemonic, SecretAccessToken}
}

// ParseSecretField returns the field identified by the given storage key.
func ParseSecretField(key string) (SecretField, bool) {
	for field, k := range secretFieldKeys {
		if k == key {
			return field, true
		}
	}
	return -1, false
}

// SecretFlag identifies a boolean marker held by the secure store.
// A flag that was never set reads as false.
type SecretFlag int

func (f SecretFlag) Key() string {
	return secretFlagKeys[f]
}

func (f SecretFlag) String() string {
	return f.Key()
}

func (f SecretFlag) IsValid() bool {
	_, ok := secretFlagKeys[f]
	return ok
}

// SecretFlags returns all the known secret flags.
func SecretFlags() []SecretFlag {
	return []SecretFlag{FlagAlreadyBackup}
}
