// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/chk"

// Geometry defines the region where a state applies
type Geometry int

// geometries
const (
	Rectangular Geometry = iota + 1 // cells overlapping [xmin,xmax)×[ymin,ymax)
	Circular                        // cells whose centre lies within radius of (xmin,ymin)
	Point                           // cell whose lower-left vertex is (xmin,ymin)
)

func (o Geometry) String() string {
	switch o {
	case Rectangular:
		return "rectangle"
	case Circular:
		return "circle"
	case Point:
		return "point"
	}
	return "background"
}

// State holds the initial energy and density of a region
type State struct {

	// input data
	Geom    string  `json:"geometry"` // rectangle, circle or point; ignored for background
	Xmin    float64 `json:"xmin"`     // rectangle: left; circle: centre x; point: x
	Ymin    float64 `json:"ymin"`     // rectangle: bottom; circle: centre y; point: y
	Xmax    float64 `json:"xmax"`     // rectangle: right
	Ymax    float64 `json:"ymax"`     // rectangle: top
	Radius  float64 `json:"radius"`   // circle: radius
	Energy  float64 `json:"energy"`   // specific energy
	Density float64 `json:"density"`  // density

	// derived
	Geometry Geometry // geometry code; 0 for background
}

// PostProcess validates the state and sets the geometry code
func (o *State) PostProcess(background bool) error {
	if o.Density <= 0 {
		return chk.Err("density must be positive. %g is invalid", o.Density)
	}
	if background {
		o.Geometry = 0
		return nil
	}
	switch o.Geom {
	case "rectangle", "rectangular":
		o.Geometry = Rectangular
		if o.Xmax < o.Xmin || o.Ymax < o.Ymin {
			return chk.Err("rectangle [%g,%g]×[%g,%g] is inverted", o.Xmin, o.Xmax, o.Ymin, o.Ymax)
		}
	case "circle", "circular":
		o.Geometry = Circular
		if o.Radius < 0 {
			return chk.Err("radius must be non-negative. %g is invalid", o.Radius)
		}
	case "point":
		o.Geometry = Point
	default:
		return chk.Err("cannot find geometry named %q", o.Geom)
	}
	return nil
}
