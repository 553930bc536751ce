// lumina is a command-line companion for the SDK: key management,
// offline transaction inspection and signing, and submission to a node.
package main

import (
	"fmt"
	"os"

	"github.com/ledgerwatch/log/v3"
	"github.com/urfave/cli/v2"
)

func main() {
	app := makeApp()
	if err := app.Run(os.Args); err != nil {
		_, printErr := fmt.Fprintln(os.Stderr, err)
		if printErr != nil {
			log.Warn("Fprintln error", "err", printErr)
		}
		os.Exit(1)
	}
}

var (
	nodeFlag = &cli.StringFlag{
		Name:  "node",
		Usage: "base URL of the node REST API",
		Value: "http://localhost:8669",
	}
	keyFileFlag = &cli.StringFlag{
		Name:  "key-file",
		Usage: "path of the hex-encoded private key file",
		Value: "lumina-key.txt",
	}
)

func makeApp() *cli.App {
	app := cli.NewApp()
	app.Name = "lumina"
	app.Usage = "Lumina transaction toolbox"
	app.UsageText = app.Name + ` [command] [flags]`
	app.Commands = []*cli.Command{
		{
			Name:  "key",
			Usage: "manage signing keys",
			Subcommands: []*cli.Command{
				{
					Name:   "new",
					Usage:  "generate a key and write it to the key file",
					Flags:  []cli.Flag{keyFileFlag},
					Action: runKeyNew,
				},
				{
					Name:   "address",
					Usage:  "print the address of the key file",
					Flags:  []cli.Flag{keyFileFlag},
					Action: runKeyAddress,
				},
			},
		},
		{
			Name:      "inspect",
			Usage:     "decode a raw transaction and print its fields",
			ArgsUsage: "RAW_HEX",
			Action:    runInspect,
		},
		{
			Name:      "sign",
			Usage:     "sign a raw unsigned transaction",
			ArgsUsage: "RAW_HEX",
			Flags:     []cli.Flag{keyFileFlag},
			Action:    runSign,
		},
		{
			Name:      "send",
			Usage:     "submit a raw signed transaction",
			ArgsUsage: "RAW_HEX",
			Flags:     []cli.Flag{nodeFlag},
			Action:    runSend,
		},
		{
			Name:      "transfer",
			Usage:     "build, sign and submit a transfer",
			ArgsUsage: "TO_ADDRESS AMOUNT_WEI",
			Flags:     []cli.Flag{nodeFlag, keyFileFlag},
			Action:    runTransfer,
		},
	}
	return app
}
