/*
 * xyz.go, part of gopoly.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
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

//xyz.go reads and writes atomic configurations in an extended-XYZ flavor:
//the comment line carries the cell as Lattice="ax ay az bx by bz cx cy cz"
//and the periodicity as pbc="T T T", and each atom line carries symbol,
//position, size and mass. Files whose name ends in ".zst" are compressed
//with zstd, transparently in both directions.

package poly

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/gopoly/v3"
	"gonum.org/v1/gonum/mat"
)

//XYZRead reads the configuration in the extended-XYZ file name. The comment
//line must contain a Lattice entry; a missing pbc entry means fully
//periodic.
func XYZRead(name string) (*Configuration, error) {
	const f = "XYZRead"
	file, err := os.Open(name)
	if err != nil {
		return nil, CError{err.Error(), []string{f}}
	}
	defer file.Close()
	var in io.Reader = file
	if strings.HasSuffix(name, ".zst") {
		dec, err := zstd.NewReader(file)
		if err != nil {
			return nil, CError{err.Error(), []string{f}}
		}
		defer dec.Close()
		in = dec
	}
	conf, err := xyzRead(bufio.NewReader(in))
	if err != nil {
		return nil, errDecorate(err, fmt.Sprintf("%s: %s", f, name))
	}
	return conf, nil
}

func xyzRead(in *bufio.Reader) (*Configuration, error) {
	const f = "xyzRead"
	line, err := in.ReadString('\n')
	if err != nil {
		return nil, CError{"missing atom-count line", []string{f}}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms <= 0 {
		return nil, CError{fmt.Sprintf("malformed atom count %q", strings.TrimSpace(line)), []string{f}}
	}
	comment, err := in.ReadString('\n')
	if err != nil {
		return nil, CError{"missing comment line", []string{f}}
	}
	cell, err := parseCell(comment)
	if err != nil {
		return nil, errDecorate(err, f)
	}
	coords := make([]float64, 0, 3*natoms)
	sizes := make([]float64, 0, natoms)
	masses := make([]float64, 0, natoms)
	symbols := make([]string, 0, natoms)
	for i := 0; i < natoms; i++ {
		line, err := in.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, CError{fmt.Sprintf("atom line %d: %v", i, err), []string{f}}
		}
		fields := strings.Fields(line)
		if len(fields) < 6 {
			return nil, CError{fmt.Sprintf("atom line %d has %d fields, want 6", i, len(fields)), []string{f}}
		}
		symbols = append(symbols, fields[0])
		for k := 1; k <= 3; k++ {
			v, err := strconv.ParseFloat(fields[k], 64)
			if err != nil {
				return nil, CError{fmt.Sprintf("atom line %d: %v", i, err), []string{f}}
			}
			coords = append(coords, v)
		}
		s, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, CError{fmt.Sprintf("atom line %d: %v", i, err), []string{f}}
		}
		sizes = append(sizes, s)
		m, err := strconv.ParseFloat(fields[5], 64)
		if err != nil {
			return nil, CError{fmt.Sprintf("atom line %d: %v", i, err), []string{f}}
		}
		masses = append(masses, m)
	}
	cm, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, CError{err.Error(), []string{f}}
	}
	conf, err := NewConfiguration(cm, sizes, masses, cell)
	if err != nil {
		return nil, errDecorate(err, f)
	}
	conf.SetSymbols(symbols)
	return conf, nil
}

//parseCell extracts the Lattice and pbc entries from an extended-XYZ
//comment line.
func parseCell(comment string) (*Cell, error) {
	const f = "parseCell"
	lat, err := quotedField(comment, "Lattice")
	if err != nil {
		return nil, errDecorate(err, f)
	}
	fields := strings.Fields(lat)
	if len(fields) != 9 {
		return nil, CError{fmt.Sprintf("%s: Lattice has %d entries, want 9", ErrBadCell, len(fields)), []string{f}}
	}
	data := make([]float64, 9)
	for i, s := range fields {
		data[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, CError{fmt.Sprintf("%s: %v", ErrBadCell, err), []string{f}}
		}
	}
	pbc := [3]bool{true, true, true}
	if p, err := quotedField(comment, "pbc"); err == nil {
		flags := strings.Fields(p)
		for i := 0; i < 3 && i < len(flags); i++ {
			pbc[i] = strings.EqualFold(flags[i], "T") || strings.EqualFold(flags[i], "true")
		}
	}
	cell, err := NewCell(mat.NewDense(3, 3, data), pbc)
	if err != nil {
		return nil, errDecorate(err, f)
	}
	return cell, nil
}

//quotedField returns the contents of a key="value" entry in an extended-XYZ
//comment line.
func quotedField(comment, key string) (string, error) {
	idx := strings.Index(comment, key+"=\"")
	if idx < 0 {
		return "", CError{fmt.Sprintf("no %s entry in comment line", key), []string{"quotedField"}}
	}
	rest := comment[idx+len(key)+2:]
	end := strings.Index(rest, "\"")
	if end < 0 {
		return "", CError{fmt.Sprintf("unterminated %s entry in comment line", key), []string{"quotedField"}}
	}
	return rest[:end], nil
}

//XYZWrite writes conf to the extended-XYZ file name, which is created, or
//overwritten if it exists. A name ending in ".zst" produces a
//zstd-compressed file.
func XYZWrite(name string, conf *Configuration) error {
	const f = "XYZWrite"
	if conf == nil {
		return CError{ErrNilConfiguration, []string{f}}
	}
	file, err := os.Create(name)
	if err != nil {
		return CError{err.Error(), []string{f}}
	}
	defer file.Close()
	var out io.Writer = file
	if strings.HasSuffix(name, ".zst") {
		enc, err := zstd.NewWriter(file, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return CError{err.Error(), []string{f}}
		}
		defer enc.Close()
		out = enc
	}
	if err := xyzWrite(out, conf); err != nil {
		return errDecorate(err, fmt.Sprintf("%s: %s", f, name))
	}
	return nil
}

func xyzWrite(out io.Writer, conf *Configuration) error {
	const f = "xyzWrite"
	lat := conf.Cell().Lattice()
	pbc := conf.Cell().PBC()
	flag := func(b bool) string {
		if b {
			return "T"
		}
		return "F"
	}
	fmt.Fprintf(out, "%d\n", conf.Len())
	_, err := fmt.Fprintf(out, "Lattice=\"%g %g %g %g %g %g %g %g %g\" Properties=species:S:1:pos:R:3:size:R:1:mass:R:1 pbc=\"%s %s %s\"\n",
		lat.At(0, 0), lat.At(0, 1), lat.At(0, 2),
		lat.At(1, 0), lat.At(1, 1), lat.At(1, 2),
		lat.At(2, 0), lat.At(2, 1), lat.At(2, 2),
		flag(pbc[0]), flag(pbc[1]), flag(pbc[2]))
	if err != nil {
		return CError{err.Error(), []string{f}}
	}
	coords := conf.Coords()
	for i := 0; i < conf.Len(); i++ {
		_, err := fmt.Fprintf(out, "%-2s  %12.6f %12.6f %12.6f %10.6f %10.6f\n",
			conf.Symbol(i), coords.At(i, 0), coords.At(i, 1), coords.At(i, 2),
			conf.Size(i), conf.Mass(i))
		if err != nil {
			return CError{err.Error(), []string{f}}
		}
	}
	return nil
}
