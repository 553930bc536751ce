package main

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gofrs/flock"
	"github.com/ledgerwatch/log/v3"
	"github.com/urfave/cli/v2"

	"github.com/lumina-chain/lumina-sdk/client"
	"github.com/lumina-chain/lumina-sdk/common"
	"github.com/lumina-chain/lumina-sdk/crypto"
	"github.com/lumina-chain/lumina-sdk/params"
	"github.com/lumina-chain/lumina-sdk/tx"
)

func runKeyNew(cliCtx *cli.Context) error {
	path := cliCtx.String(keyFileFlag.Name)
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return err
	}
	if !locked {
		return fmt.Errorf("key file %s is locked by another process", path)
	}
	defer lock.Unlock()

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("key file %s already exists, refusing to overwrite", path)
	}
	key, err := crypto.GenerateKey()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(crypto.KeyToHex(key)+"\n"), 0600); err != nil {
		return err
	}
	log.Info("key generated", "file", path, "address", crypto.AddressFromPrivateKey(key))
	return nil
}

func runKeyAddress(cliCtx *cli.Context) error {
	key, err := loadKey(cliCtx.String(keyFileFlag.Name))
	if err != nil {
		return err
	}
	fmt.Println(crypto.AddressFromPrivateKey(key))
	return nil
}

func runInspect(cliCtx *cli.Context) error {
	raw, err := rawArg(cliCtx)
	if err != nil {
		return err
	}
	t, err := tx.Decode(raw)
	if err != nil {
		return err
	}
	printTransaction(t, raw)
	return nil
}

func runSign(cliCtx *cli.Context) error {
	raw, err := rawArg(cliCtx)
	if err != nil {
		return err
	}
	key, err := loadKey(cliCtx.String(keyFileFlag.Name))
	if err != nil {
		return err
	}
	t, err := tx.Decode(raw)
	if err != nil {
		return err
	}
	signed, err := t.Sign(key)
	if err != nil {
		return err
	}
	encoded, err := signed.Encode(true)
	if err != nil {
		return err
	}
	fmt.Println(hexutil.Encode(encoded))
	return nil
}

func runSend(cliCtx *cli.Context) error {
	raw, err := rawArg(cliCtx)
	if err != nil {
		return err
	}
	c := client.New(cliCtx.String(nodeFlag.Name))
	res, err := c.SendRawTransaction(raw)
	if err != nil {
		return err
	}
	fmt.Println(res.ID)
	return nil
}

func runTransfer(cliCtx *cli.Context) error {
	if cliCtx.NArg() != 2 {
		return errors.New("transfer: expected TO_ADDRESS and AMOUNT_WEI")
	}
	to, err := common.ParseAddress(cliCtx.Args().Get(0))
	if err != nil {
		return err
	}
	amount, ok := new(big.Int).SetString(cliCtx.Args().Get(1), 10)
	if !ok {
		return fmt.Errorf("transfer: invalid amount %q", cliCtx.Args().Get(1))
	}
	key, err := loadKey(cliCtx.String(keyFileFlag.Name))
	if err != nil {
		return err
	}

	c := client.New(cliCtx.String(nodeFlag.Name))
	unsigned, err := c.NewTransaction(client.TxOptions{
		Type:    tx.TypeLegacy,
		Clauses: []*tx.Clause{tx.Transfer(to, amount)},
	})
	if err != nil {
		return err
	}
	signed, err := unsigned.Sign(key)
	if err != nil {
		return err
	}
	res, err := c.SendTransaction(signed)
	if err != nil {
		return err
	}
	log.Info("transfer submitted", "id", res.ID, "to", to, "amount", amount)
	fmt.Println(res.ID)
	return nil
}

func rawArg(cliCtx *cli.Context) ([]byte, error) {
	if cliCtx.NArg() != 1 {
		return nil, errors.New("expected one RAW_HEX argument")
	}
	arg := cliCtx.Args().First()
	if !strings.HasPrefix(arg, "0x") {
		arg = "0x" + arg
	}
	return hexutil.Decode(arg)
}

func loadKey(path string) (*ecdsa.PrivateKey, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return crypto.HexToKey(strings.TrimSpace(string(content)))
}

func printTransaction(t *tx.Transaction, raw []byte) {
	fmt.Printf("type:        0x%02x\n", t.Type())
	network := "custom"
	if cfg := params.ConfigByTag(t.ChainTag()); cfg != nil {
		network = cfg.Name
	}
	fmt.Printf("chainTag:    0x%02x (%s)\n", t.ChainTag(), network)
	fmt.Printf("blockRef:    %s\n", t.BlockRef())
	fmt.Printf("expiration:  %d blocks\n", t.Expiration())
	fmt.Printf("gas:         %d\n", t.Gas())
	if coef, err := t.GasPriceCoef(); err == nil {
		fmt.Printf("gasPriceCoef: %d\n", coef)
	}
	if maxFee, err := t.MaxFeePerGas(); err == nil {
		maxPriorityFee, _ := t.MaxPriorityFeePerGas()
		fmt.Printf("maxFeePerGas: %s\n", maxFee)
		fmt.Printf("maxPriorityFeePerGas: %s\n", maxPriorityFee)
	}
	if dep := t.DependsOn(); dep != nil {
		fmt.Printf("dependsOn:   %s\n", dep)
	}
	fmt.Printf("nonce:       %d\n", t.Nonce())
	fmt.Printf("delegated:   %v\n", t.IsDelegated())
	for i, c := range t.Clauses() {
		target := "(contract creation)"
		if to := c.To(); to != nil {
			target = to.Hex()
		}
		fmt.Printf("clause[%d]:   to=%s value=%s data=%d bytes\n", i, target, c.Value(), len(c.Data()))
	}
	if origin, err := t.Origin(); err == nil {
		fmt.Printf("origin:      %s\n", origin)
		if id, err := t.ID(); err == nil {
			fmt.Printf("id:          %s\n", id)
		}
		if delegator, err := t.Delegator(); err == nil && delegator != nil {
			fmt.Printf("delegator:   %s\n", delegator)
		}
	} else {
		fmt.Println("unsigned")
	}
	fmt.Printf("size:        %s\n", datasize.ByteSize(len(raw)).HumanReadable())
}
