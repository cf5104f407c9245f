// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// unit tetrahedron: identity mapping from natural to real coordinates
var xtet4 = [][]float64{
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

func Test_shp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp01. tet4: interpolation and quadrature")

	s := Get("tet4", 0)
	if s == nil {
		tst.Errorf("cannot get tet4 shape")
		return
	}
	ips, ipsf, err := s.GetIps(0, 0)
	if err != nil {
		tst.Errorf("GetIps failed:\n%v", err)
		return
	}
	chk.IntAssert(len(ips), 4)
	chk.IntAssert(len(ipsf), 1)

	// partition of unity, zero gradient sums and volume
	vol := 0.0
	for _, ip := range ips {
		err = s.CalcAtIp(xtet4, ip, true)
		if err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		sum := 0.0
		for m := 0; m < s.Nverts; m++ {
			sum += s.S[m]
		}
		chk.Float64(tst, "Σ S", 1e-15, sum, 1)
		for i := 0; i < s.Gndim; i++ {
			gsum := 0.0
			for m := 0; m < s.Nverts; m++ {
				gsum += s.G[m][i]
			}
			chk.Float64(tst, "Σ G", 1e-15, gsum, 0)
		}
		chk.Float64(tst, "J", 1e-15, s.J, 1)
		vol += s.J * ip[3]
	}
	chk.Float64(tst, "volume", 1e-15, vol, 1.0/6.0)

	// delta property and derivatives
	CheckShape(tst, s, 1e-15, chk.Verbose)
	CheckDSdR(tst, s, []float64{0.25, 0.25, 0.25}, 1e-9, chk.Verbose)
}

func Test_shp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp02. tet4: face normal and face area")

	s := Get("tet4", 1) // copy
	_, ipsf, err := s.GetIps(0, 0)
	if err != nil {
		tst.Errorf("GetIps failed:\n%v", err)
		return
	}

	// face 2 == {0, 2, 1} is the z = 0 plane with outward normal -z
	area := 0.0
	for _, ipf := range ipsf {
		err = s.CalcAtFaceIp(xtet4, ipf, 2)
		if err != nil {
			tst.Errorf("CalcAtFaceIp failed:\n%v", err)
			return
		}
		chk.Array(tst, "Fnvec", 1e-15, s.Fnvec, []float64{0, 0, -1})
		Jf := 0.0
		for i := 0; i < s.Gndim; i++ {
			Jf += s.Fnvec[i] * s.Fnvec[i]
		}
		area += ipf[3] // Jf == 1 on this face
		chk.Float64(tst, "Jf", 1e-15, Jf, 1)
	}
	chk.Float64(tst, "face area", 1e-15, area, 0.5)
}

func Test_shp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp03. tet10: interpolation and quadrature")

	// straight-edged tet10 over the unit tetrahedron
	x := [][]float64{
		{0, 1, 0, 0, 0.5, 0.5, 0.0, 0.0, 0.5, 0.0},
		{0, 0, 1, 0, 0.0, 0.5, 0.5, 0.0, 0.0, 0.5},
		{0, 0, 0, 1, 0.0, 0.0, 0.0, 0.5, 0.5, 0.5},
	}

	s := Get("tet10", 0)
	if s == nil {
		tst.Errorf("cannot get tet10 shape")
		return
	}
	ips, ipsf, err := s.GetIps(0, 0)
	if err != nil {
		tst.Errorf("GetIps failed:\n%v", err)
		return
	}
	chk.IntAssert(len(ips), 5)
	chk.IntAssert(len(ipsf), 3)

	// partition of unity, zero gradient sums and volume
	vol := 0.0
	for _, ip := range ips {
		err = s.CalcAtIp(x, ip, true)
		if err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		sum := 0.0
		for m := 0; m < s.Nverts; m++ {
			sum += s.S[m]
		}
		chk.Float64(tst, "Σ S", 1e-14, sum, 1)
		for i := 0; i < s.Gndim; i++ {
			gsum := 0.0
			for m := 0; m < s.Nverts; m++ {
				gsum += s.G[m][i]
			}
			chk.Float64(tst, "Σ G", 1e-14, gsum, 0)
		}
		vol += s.J * ip[3]
	}
	chk.Float64(tst, "volume", 1e-14, vol, 1.0/6.0)

	// delta property and derivatives
	CheckShape(tst, s, 1e-14, chk.Verbose)
	CheckDSdR(tst, s, []float64{0.2, 0.3, 0.1}, 1e-9, chk.Verbose)
}
