package wallet

// WalletOptionFn configures a Wallet at construction.
type WalletOptionFn func(*Wallet)

// WithPrefix sets the bech32 account address prefix. An empty prefix keeps
// the default.
func WithPrefix(prefix string) WalletOptionFn {
	return func(w *Wallet) {
		if prefix != "" {
			w.prefix = prefix
		}
	}
}

// WithHDPath overrides the BIP44 derivation path.
func WithHDPath(hdPath string) WalletOptionFn {
	return func(w *Wallet) {
		w.hdPath = hdPath
	}
}
