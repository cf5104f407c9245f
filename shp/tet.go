// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "github.com/cpmech/gosl/chk"

// integration rules over the reference tetrahedron; weights sum to 1/6
var (
	ips_tet_1 = []Ipoint{
		{1.0 / 4.0, 1.0 / 4.0, 1.0 / 4.0, 1.0 / 6.0},
	}
	ips_tet_4 = []Ipoint{
		{0.1381966011250105, 0.1381966011250105, 0.1381966011250105, 1.0 / 24.0},
		{0.5854101966249685, 0.1381966011250105, 0.1381966011250105, 1.0 / 24.0},
		{0.1381966011250105, 0.5854101966249685, 0.1381966011250105, 1.0 / 24.0},
		{0.1381966011250105, 0.1381966011250105, 0.5854101966249685, 1.0 / 24.0},
	}
	ips_tet_5 = []Ipoint{
		{1.0 / 4.0, 1.0 / 4.0, 1.0 / 4.0, -2.0 / 15.0},
		{1.0 / 6.0, 1.0 / 6.0, 1.0 / 6.0, 3.0 / 40.0},
		{1.0 / 2.0, 1.0 / 6.0, 1.0 / 6.0, 3.0 / 40.0},
		{1.0 / 6.0, 1.0 / 2.0, 1.0 / 6.0, 3.0 / 40.0},
		{1.0 / 6.0, 1.0 / 6.0, 1.0 / 2.0, 3.0 / 40.0},
	}
)

// integration rules over the reference triangle (faces); weights sum to 1/2
var (
	ips_tri_1 = []Ipoint{
		{1.0 / 3.0, 1.0 / 3.0, 0, 1.0 / 2.0},
	}
	ips_tri_3 = []Ipoint{
		{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
	}
)

// GetIps returns the integration points for the element and its faces
//  Input:
//   nip  -- number of volume integration points; 0 => default
//   nipf -- number of face integration points; 0 => default
func (o *Shape) GetIps(nip, nipf int) (ips, ipsf []Ipoint, err error) {
	switch o.Type {
	case "tet4":
		if nip == 0 {
			nip = 4
		}
		if nipf == 0 {
			nipf = 1
		}
	case "tet10":
		if nip == 0 {
			nip = 5
		}
		if nipf == 0 {
			nipf = 3
		}
	default:
		err = chk.Err("shape %q is not available", o.Type)
		return
	}
	switch nip {
	case 1:
		ips = ips_tet_1
	case 4:
		ips = ips_tet_4
	case 5:
		ips = ips_tet_5
	default:
		err = chk.Err("cannot get %d integration points for %q", nip, o.Type)
		return
	}
	switch nipf {
	case 1:
		ipsf = ips_tri_1
	case 3:
		ipsf = ips_tri_3
	default:
		err = chk.Err("cannot get %d face integration points for %q", nipf, o.Type)
	}
	return
}

// tet4 ////////////////////////////////////////////////////////////////////////////////////////////

// Tet4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tet4
// elements at natural coordinates r
//
//               t
//               |
//               3
//              /|`.
//              ||  `,
//             / |    ',
//             | |      \
//            /  |       `.
//            |  |         `,
//           /   0.,,_       `,
//           |  /     ``'-.,.  ',
//          | /              ``'2 ,,s
//          |/            ,.-``
//          1.        _,-'
//            ``'-,,''
//          /
//         r
//
func Tet4(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int) {

	S[0] = 1.0 - r[0] - r[1] - r[2]
	S[1] = r[0]
	S[2] = r[1]
	S[3] = r[2]

	if !derivs {
		return
	}

	dSdR[0][0] = -1.0
	dSdR[0][1] = -1.0
	dSdR[0][2] = -1.0
	dSdR[1][0] = 1.0
	dSdR[1][1] = 0.0
	dSdR[1][2] = 0.0
	dSdR[2][0] = 0.0
	dSdR[2][1] = 1.0
	dSdR[2][2] = 0.0
	dSdR[3][0] = 0.0
	dSdR[3][1] = 0.0
	dSdR[3][2] = 1.0
}

// Tri3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri3
// faces at natural coordinates r
func Tri3(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int) {

	S[0] = 1.0 - r[0] - r[1]
	S[1] = r[0]
	S[2] = r[1]

	if !derivs {
		return
	}

	dSdR[0][0] = -1.0
	dSdR[0][1] = -1.0
	dSdR[1][0] = 1.0
	dSdR[1][1] = 0.0
	dSdR[2][0] = 0.0
	dSdR[2][1] = 1.0
}

// tet10 ///////////////////////////////////////////////////////////////////////////////////////////

// Tet10 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tet10
// elements at natural coordinates r. Vertices 4..9 sit on the edges
// (0,1), (1,2), (2,0), (0,3), (1,3), (2,3)
func Tet10(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int) {

	u := 1.0 - r[0] - r[1] - r[2]
	s := r[0]
	t := r[1]
	w := r[2]

	S[0] = u * (2.0*u - 1.0)
	S[1] = s * (2.0*s - 1.0)
	S[2] = t * (2.0*t - 1.0)
	S[3] = w * (2.0*w - 1.0)
	S[4] = 4.0 * u * s
	S[5] = 4.0 * s * t
	S[6] = 4.0 * t * u
	S[7] = 4.0 * u * w
	S[8] = 4.0 * s * w
	S[9] = 4.0 * t * w

	if !derivs {
		return
	}

	// du/dr = du/ds = du/dt = -1
	dSdR[0][0] = 1.0 - 4.0*u
	dSdR[0][1] = 1.0 - 4.0*u
	dSdR[0][2] = 1.0 - 4.0*u
	dSdR[1][0] = 4.0*s - 1.0
	dSdR[1][1] = 0.0
	dSdR[1][2] = 0.0
	dSdR[2][0] = 0.0
	dSdR[2][1] = 4.0*t - 1.0
	dSdR[2][2] = 0.0
	dSdR[3][0] = 0.0
	dSdR[3][1] = 0.0
	dSdR[3][2] = 4.0*w - 1.0
	dSdR[4][0] = 4.0 * (u - s)
	dSdR[4][1] = -4.0 * s
	dSdR[4][2] = -4.0 * s
	dSdR[5][0] = 4.0 * t
	dSdR[5][1] = 4.0 * s
	dSdR[5][2] = 0.0
	dSdR[6][0] = -4.0 * t
	dSdR[6][1] = 4.0 * (u - t)
	dSdR[6][2] = -4.0 * t
	dSdR[7][0] = -4.0 * w
	dSdR[7][1] = -4.0 * w
	dSdR[7][2] = 4.0 * (u - w)
	dSdR[8][0] = 4.0 * w
	dSdR[8][1] = 0.0
	dSdR[8][2] = 4.0 * s
	dSdR[9][0] = 0.0
	dSdR[9][1] = 4.0 * w
	dSdR[9][2] = 4.0 * t
}

// Tri6 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri6
// faces at natural coordinates r
func Tri6(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int) {

	u := 1.0 - r[0] - r[1]
	s := r[0]
	t := r[1]

	S[0] = u * (2.0*u - 1.0)
	S[1] = s * (2.0*s - 1.0)
	S[2] = t * (2.0*t - 1.0)
	S[3] = 4.0 * u * s
	S[4] = 4.0 * s * t
	S[5] = 4.0 * t * u

	if !derivs {
		return
	}

	dSdR[0][0] = 1.0 - 4.0*u
	dSdR[0][1] = 1.0 - 4.0*u
	dSdR[1][0] = 4.0*s - 1.0
	dSdR[1][1] = 0.0
	dSdR[2][0] = 0.0
	dSdR[2][1] = 4.0*t - 1.0
	dSdR[3][0] = 4.0 * (u - s)
	dSdR[3][1] = -4.0 * s
	dSdR[4][0] = 4.0 * t
	dSdR[4][1] = 4.0 * s
	dSdR[5][0] = -4.0 * t
	dSdR[5][1] = 4.0 * (u - t)
}

// register shapes
func init() {

	// tet4
	tet4 := &Shape{
		Type:          "tet4",
		Func:          Tet4,
		FaceFunc:      Tri3,
		FaceType:      "tri3",
		Gndim:         3,
		Nverts:        4,
		VtkCode:       10,
		FaceNvertsMax: 3,
		FaceLocalVerts: [][]int{
			{0, 3, 2}, {0, 1, 3}, {0, 2, 1}, {1, 2, 3},
		},
		NatCoords: [][]float64{
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
	}
	tet4.init_scratchpad()
	factory["tet4"] = tet4

	// tet10
	tet10 := &Shape{
		Type:          "tet10",
		Func:          Tet10,
		FaceFunc:      Tri6,
		FaceType:      "tri6",
		Gndim:         3,
		Nverts:        10,
		VtkCode:       24,
		FaceNvertsMax: 6,
		FaceLocalVerts: [][]int{
			{0, 3, 2, 7, 9, 6}, {0, 1, 3, 4, 8, 7}, {0, 2, 1, 6, 5, 4}, {1, 2, 3, 5, 9, 8},
		},
		NatCoords: [][]float64{
			{0, 1, 0, 0, 0.5, 0.5, 0.0, 0.0, 0.5, 0.0},
			{0, 0, 1, 0, 0.0, 0.5, 0.5, 0.0, 0.0, 0.5},
			{0, 0, 0, 1, 0.0, 0.0, 0.0, 0.5, 0.5, 0.5},
		},
	}
	tet10.init_scratchpad()
	factory["tet10"] = tet10
}
