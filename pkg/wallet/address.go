package wallet

// ResolveAddress derives the first account address of mnemonic for the given
// bech32 prefix. An empty prefix means the Juno prefix. No network access is
// involved.
func ResolveAddress(mnemonic, prefix string) (string, error) {
	w, err := FromMnemonic(mnemonic, WithPrefix(prefix))
	if err != nil {
		return "", err
	}
	return w.Address(), nil
}
