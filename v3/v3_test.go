/*
 * v3_test.go, part of gogaussian.
 *
 *
 * Copyright 2024 The gogaussian Authors
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
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("expected 3 vectors, got %d", A.NVecs())
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Errorf("changes in a view should be reflected in the parent matrix")
	}
	Te.Log("View\n", A, "\n", View)
	if v := A.Vec(2); v[0] != 7 || v[1] != 8 || v[2] != 9 {
		Te.Errorf("unexpected vector %v", v)
	}
	if _, err := NewMatrix([]float64{1, 2}); err == nil {
		Te.Errorf("expected an error for a slice not divisible by 3")
	}
}

func TestZeros(Te *testing.T) {
	Z := Zeros(4)
	Z.SetVec(3, 1, 2, 3)
	if Z.NVecs() != 4 || Z.At(3, 2) != 3 || Z.At(0, 0) != 0 {
		Te.Errorf("unexpected matrix %v", Z)
	}
}
