// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"

	cfg "github.com/dusk-network/dusk-base58/pkg/config"
	"github.com/dusk-network/dusk-base58/pkg/crypto/base58"
	"github.com/dusk-network/dusk-base58/pkg/crypto/hash"
	"github.com/dusk-network/dusk-base58/pkg/util/nativeutils/logging"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/urfave/cli"
)

var (
	log   *logrus.Entry
	stdin io.Reader = os.Stdin
)

type mode struct {
	decode bool
	check  bool
}

type operation func(c *base58.Codec, in []byte) ([]byte, error)

var operations = map[mode]operation{
	{decode: false, check: false}: func(c *base58.Codec, in []byte) ([]byte, error) {
		return []byte(c.Encode(in)), nil
	},
	{decode: false, check: true}: func(c *base58.Codec, in []byte) ([]byte, error) {
		return []byte(c.CheckEncode(in)), nil
	},
	{decode: true, check: false}: func(c *base58.Codec, in []byte) ([]byte, error) {
		return c.DecodeBytes(in)
	},
	{decode: true, check: true}: func(c *base58.Codec, in []byte) ([]byte, error) {
		return c.CheckDecodeBytes(in)
	},
}

func (m mode) String() string {
	op := "encode"
	if m.decode {
		op = "decode"
	}
	if m.check {
		op += "+check"
	}
	return op
}

func action(ctx *cli.Context) error {
	// check arguments
	if ctx.NArg() > 1 {
		return fmt.Errorf("expected at most one FILE argument, got %d", ctx.NArg())
	}

	overrides, err := configOverrides(ctx)
	if err != nil {
		return err
	}

	// Loading all configurations. Fail-fast if critical error occurs
	if err := cfg.Load(ctx.String(ConfigFlag.Name), overrides); err != nil {
		return errors.Wrap(err, "could not load config")
	}

	logFile, closeLog, err := logging.OpenOutput(cfg.Get().Logger.Output)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeLog()
	}()
	logging.InitLog(logFile)

	codec, err := newCodec(cfg.Get())
	if err != nil {
		return err
	}

	data, err := readInput(ctx.Args().First())
	if err != nil {
		return err
	}

	m := mode{decode: ctx.Bool("decode"), check: ctx.Bool("check")}
	log.WithFields(logrus.Fields{
		"mode":     m.String(),
		"alphabet": codec.Alphabet().String(),
		"input":    len(data),
	}).Debugln("running")

	result, err := operations[m](codec, data)
	if err != nil {
		log.WithError(err).WithField("mode", m.String()).Debugln("operation failed")
		return err
	}

	if _, err := ctx.App.Writer.Write(result); err != nil {
		return errors.Wrap(err, "could not write output")
	}
	return nil
}

// configOverrides collects the flags set on the command line into a pflag
// set bound to the config keys.
func configOverrides(ctx *cli.Context) (*pflag.FlagSet, error) {
	fs := pflag.NewFlagSet(ctx.App.Name, pflag.ContinueOnError)
	cfg.DefineFlags(fs)

	for name, key := range configKeys {
		if !ctx.IsSet(name) {
			continue
		}

		value := ctx.String(name)
		if name == "autofix" {
			value = strconv.FormatBool(ctx.Bool(name))
		}
		if err := fs.Set(key, value); err != nil {
			return nil, errors.Wrapf(err, "invalid value for --%s", name)
		}
	}

	return fs, nil
}

func newCodec(r cfg.Registry) (*base58.Codec, error) {
	alphabet, ok := base58.LookupAlphabet(r.Codec.Alphabet)
	if !ok {
		var err error
		if alphabet, err = base58.NewAlphabet(r.Codec.Alphabet); err != nil {
			return nil, err
		}
	}

	digest, err := hash.Lookup(r.Codec.Hash)
	if err != nil {
		return nil, err
	}

	return base58.NewCodec(alphabet,
		base58.WithAutofix(r.Codec.Autofix),
		base58.WithChecksum(digest),
	), nil
}

// readInput reads the whole of file, or of standard input for "" or "-".
func readInput(file string) ([]byte, error) {
	if file == "" || file == "-" {
		data, err := ioutil.ReadAll(stdin)
		return data, errors.Wrap(err, "could not read standard input")
	}

	data, err := ioutil.ReadFile(file)
	return data, errors.Wrapf(err, "could not read %s", file)
}
