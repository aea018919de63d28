package config

import (
	"fmt"
	"strings"

	"github.com/gnft-labs/frontsync/internal/domain"
)

// ContractRefPrefix marks a deploy argument that refers to the address of a contract
// deployed earlier in the same plan, e.g. "@BasicGNFT".
const ContractRefPrefix = "@"

// DeployStep is one entry of the deploy plan: either a contract creation or a call
// on a contract created earlier in the plan.
type DeployStep struct {
	Contract domain.ContractIdentity `json:"contract,omitempty" yaml:"contract,omitempty"`
	Call     string                  `json:"call,omitempty" yaml:"call,omitempty"` // "Contract.method"
	Args     []string                `json:"args,omitempty" yaml:"args,omitempty"`
}

// IsCall reports whether the step calls a method instead of creating a contract
func (s DeployStep) IsCall() bool {
	return s.Call != ""
}

// CallTarget splits Call into the target contract and method name
func (s DeployStep) CallTarget() (domain.ContractIdentity, string, error) {
	contract, method, ok := strings.Cut(s.Call, ".")
	if !ok || contract == "" || method == "" {
		return "", "", fmt.Errorf("call %q must have the form Contract.method", s.Call)
	}
	return domain.ContractIdentity(contract), method, nil
}

// Validate checks that exactly one of Contract and Call is set
func (s DeployStep) Validate() error {
	switch {
	case s.Contract != "" && s.Call != "":
		return fmt.Errorf("deploy step sets both contract %q and call %q", s.Contract, s.Call)
	case s.Contract == "" && s.Call == "":
		return fmt.Errorf("deploy step needs a contract or a call")
	case s.IsCall():
		_, _, err := s.CallTarget()
		return err
	}
	return nil
}

// ContractRef returns the identity referenced by arg, if arg is a contract reference
func ContractRef(arg string) (domain.ContractIdentity, bool) {
	name, ok := strings.CutPrefix(arg, ContractRefPrefix)
	if !ok || name == "" {
		return "", false
	}
	return domain.ContractIdentity(name), true
}

func (s DeployStep) String() string {
	if s.IsCall() {
		return fmt.Sprintf("%s(%s)", s.Call, strings.Join(s.Args, ", "))
	}
	return fmt.Sprintf("new %s(%s)", s.Contract, strings.Join(s.Args, ", "))
}
