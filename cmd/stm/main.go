/*
 * main.go, part of gostm.
 *
 * Copyright 2015 The gostm developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Command stm produces STM images from cube files holding the local density
// of states:
//
//	stm -heights 2.5,5.0 -isovalues 1e-7 [options] stm*.cube
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	stm "github.com/gostm/gostm"
)

// floatList is a comma-separated list of floats for flag parsing.
type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(s string) error {
	*l = nil
	for _, field := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return err
		}
		*l = append(*l, v)
	}
	return nil
}

// intList is the integer counterpart, used for -replicate.
type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(s string) error {
	*l = nil
	for _, field := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return err
		}
		*l = append(*l, v)
	}
	return nil
}

func main() {
	par := stm.DefaultParams()
	paramFile := flag.String("params", "", "YAML file with run parameters; flags override it")
	var heights, isovalues, plotrange floatList
	var replicate intList
	flag.Var(&heights, "heights", "comma-separated tip heights above the topmost atom [A]")
	flag.Var(&isovalues, "isovalues", "comma-separated isovalues for constant-current mode")
	flag.Var(&plotrange, "plotrange", "color scale as min,max; automatic if not given")
	flag.Var(&replicate, "replicate", "lateral replication as nx,ny (or one value for both)")
	zmin := flag.Float64("zmin", par.ZMin, "lowest tip height in constant-current mode [A]")
	nsamples := flag.Int("nsamples", par.NSamples, "points per axis of the resampling mesh")
	format := flag.String("format", par.Format, "output format of the extracted plane: plain or igor")
	noplot := flag.Bool("noplot", false, "skip resampling and PNG output")
	flag.Parse()

	if *paramFile != "" {
		loaded, err := stm.LoadParams(*paramFile)
		if err != nil {
			log.Fatal(err)
		}
		par = loaded
	}
	// Flags win over the parameter file, but only where actually set.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "heights":
			par.Heights = heights
		case "isovalues":
			par.Isovalues = isovalues
		case "plotrange":
			par.PlotRange = plotrange
		case "replicate":
			par.Replicate = replicate
		case "zmin":
			par.ZMin = *zmin
		case "nsamples":
			par.NSamples = *nsamples
		case "format":
			par.Format = *format
		case "noplot":
			par.Plot = !*noplot
		}
	})

	cubes := flag.Args()
	if len(cubes) == 0 {
		fmt.Fprintln(os.Stderr, "usage: stm [options] CUBEFILE...")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if len(par.Heights) == 0 && len(par.Isovalues) == 0 {
		fmt.Fprintln(os.Stderr, "stm: at least one of -heights or -isovalues is required")
		os.Exit(2)
	}
	if err := stm.RunSTM(par, cubes); err != nil {
		log.Fatal(err)
	}
}
