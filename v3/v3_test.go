/*
 * v3_test.go, part of molgeo.
 *
 * Copyright 2015 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package v3

import (
	"fmt"
	"math"
	"testing"
)

func TestVecArithmetic(Te *testing.T) {
	a := Vec{1, 2, 3}
	b := Vec{4, 5, 6}
	if s := a.Add(b); s != (Vec{5, 7, 9}) {
		Te.Errorf("Add: got %v", s)
	}
	if d := b.Sub(a); d != (Vec{3, 3, 3}) {
		Te.Errorf("Sub: got %v", d)
	}
	if s := a.Scale(2); s != (Vec{2, 4, 6}) {
		Te.Errorf("Scale: got %v", s)
	}
	if d := a.Dot(b); d != 32 {
		Te.Errorf("Dot: got %f", d)
	}
	if n := (Vec{3, 4, 0}).Norm(); n != 5 {
		Te.Errorf("Norm: got %f", n)
	}
	if c := (Vec{1, 0, 0}).Cross(Vec{0, 1, 0}); c != (Vec{0, 0, 1}) {
		Te.Errorf("Cross: got %v", c)
	}
}

func TestUnit(Te *testing.T) {
	u, err := Vec{2, 2, 1}.Unit()
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(u.Norm()-1) > 1e-12 {
		Te.Errorf("Unit vector %v has norm %f", u, u.Norm())
	}
	_, err = Vec{}.Unit()
	if err == nil {
		Te.Error("Unit of the zero vector should fail")
	}
	e, ok := err.(*Error)
	if !ok || !e.Critical() {
		Te.Fatalf("Unexpected error %v", err)
	}
	e.Decorate("Caller")
	if d := e.Decorate(""); len(d) != 2 || d[0] != "Unit" || d[1] != "Caller" {
		Te.Errorf("Expected decorations [Unit Caller], got %v", d)
	}
}

func TestIsFinite(Te *testing.T) {
	if !(Vec{1, -2, 0}).IsFinite() {
		Te.Error("finite vector reported as non-finite")
	}
	if (Vec{math.NaN(), 0, 0}).IsFinite() || (Vec{0, math.Inf(1), 0}).IsFinite() {
		Te.Error("non-finite vector reported as finite")
	}
}

func TestMatrix(Te *testing.T) {
	vs := []Vec{{2, 0, 0}, {0, 0, 0}, {-2, 0, -2}}
	M := Zeros(len(vs))
	if M.NVecs() != 3 {
		Te.Errorf("Expected 3 vecs, got %d", M.NVecs())
	}
	for i, v := range vs {
		M.SetVec(i, v)
	}
	if v := M.Vec(2); v != (Vec{-2, 0, -2}) {
		Te.Errorf("Vec(2): got %v", v)
	}
	if M.At(2, 2) != -2 {
		Te.Error("SetVec should set the row of the underlying matrix")
	}
	back := M.Vecs()
	back[0] = Vec{5, 0, 0}
	if M.Vec(0) != vs[0] {
		Te.Error("Vecs should return a copy")
	}
	fmt.Println("Matrix", M)
}
