// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package genericconf

import (
	"errors"

	flag "github.com/spf13/pflag"
)

const PASSWORD_NOT_SET = "PASSWORD_NOT_SET"

// WalletConfig locates the secp256k1 key: either inline or in a file via
// PrivateKey, or in an encrypted go-ethereum keystore file via Pathname.
type WalletConfig struct {
	Pathname   string `koanf:"pathname"`
	Password   string `koanf:"password"`
	PrivateKey string `koanf:"private-key"`
}

func (w *WalletConfig) Pwd() *string {
	if w.Password == PASSWORD_NOT_SET {
		return nil
	}
	return &w.Password
}

var WalletConfigDefault = WalletConfig{
	Pathname:   "",
	Password:   PASSWORD_NOT_SET,
	PrivateKey: "",
}

func WalletConfigAddOptions(prefix string, f *flag.FlagSet, defaultPathname string) {
	f.String(prefix+".pathname", defaultPathname, "pathname of an encrypted keystore file holding the signing key")
	f.String(prefix+".password", WalletConfigDefault.Password, "keystore passphrase")
	f.String(prefix+".private-key", WalletConfigDefault.PrivateKey, "hex encoded signing key, or path to a file containing it")
}

func (w *WalletConfig) Validate() error {
	if w.PrivateKey != "" && w.Pathname != "" {
		return errors.New("only one of private-key and pathname may be set")
	}
	if w.PrivateKey == "" && w.Pathname == "" {
		return errors.New("either private-key or pathname must be set")
	}
	if w.Pathname != "" && w.Pwd() == nil {
		return errors.New("password must be set when using a keystore pathname")
	}
	return nil
}
