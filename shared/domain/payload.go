package domain

import (
	"github.com/itchan-dev/forumapi/shared/errors"
)

// requireStrings checks that every key is present in payload and holds a string.
// Presence is checked for all keys before any type is looked at, so a payload
// that both misses a key and has a wrongly typed one reports the missing key.
// A null or empty value counts as missing.
func requireStrings(entity string, payload Payload, keys ...string) error {
	for _, key := range keys {
		v, ok := payload[key]
		if !ok || v == nil || v == "" {
			return errors.NewDomainError(entity, errors.MissingRequiredProperty)
		}
	}
	for _, key := range keys {
		if _, ok := payload[key].(string); !ok {
			return errors.NewDomainError(entity, errors.InvalidPropertyType)
		}
	}
	return nil
}
