package models

import (
	"errors"
	"fmt"
)

// ErrContractViolation reports a response carrying a value the API contract
// does not allow, such as an enumeration member outside its closed set.
var ErrContractViolation = errors.New("contract violation")

// ContractChecker is implemented by responses that carry enumerations.
type ContractChecker interface {
	CheckContract() error
}

// checkEnum accepts the empty value, which stands for an omitted field.
func checkEnum[T interface {
	~string
	Valid() bool
}](field string, v T) error {
	if v == "" || v.Valid() {
		return nil
	}
	return fmt.Errorf("%w: %s=%q", ErrContractViolation, field, string(v))
}

// CheckAll runs CheckContract on every element and stops at the first
// violation.
func CheckAll[T ContractChecker](items []T) error {
	for _, it := range items {
		if err := it.CheckContract(); err != nil {
			return err
		}
	}
	return nil
}
