// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wdamron/hindley"
	"github.com/wdamron/hindley/classes"
	"github.com/wdamron/hindley/construct"
)

func newRootCmd() *cobra.Command {
	var registryPath string

	load := func() (*classes.Registry, error) {
		if registryPath == "" {
			return classes.Prelude(), nil
		}
		return classes.LoadFile(registryPath)
	}

	root := &cobra.Command{
		Use:          "hmclasses",
		Short:        "Inspect type-class registries",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&registryPath, "registry", "", "YAML registry file (default: the Haskell prelude)")

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List type-classes and their instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := load()
			if err != nil {
				return err
			}
			for _, name := range r.Names() {
				tc, _ := r.Get(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, strings.Join(tc.Instances(), " "))
			}
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "check CLASS CONSTRUCTOR",
		Short: "Check whether a type constructor satisfies a type-class",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := load()
			if err != nil {
				return err
			}
			set, err := r.Set(args[0])
			if err != nil {
				return err
			}
			s := hindley.NewSession()
			tv := s.FreshVarSet(set)
			if err := s.Unify(args[1], tv, construct.TConst(args[1])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s satisfies %s\n", args[1], args[0])
			return nil
		},
	})

	return root
}
