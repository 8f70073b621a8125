// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package models provides articulated sample models built with the
// scene authoring API and posed through named parameters.
package models

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/robobenjie/skifreeordie-sub000/base/errors"
	"github.com/robobenjie/skifreeordie-sub000/config"
	"github.com/robobenjie/skifreeordie-sub000/frame"
	"github.com/robobenjie/skifreeordie-sub000/scene"
	"github.com/robobenjie/skifreeordie-sub000/shape"
)

// The parameters that pose a [Skier], in radians or meters.
// Each is prefixed with [Options.Prefix].
const (
	// ParamHeading turns the whole skier about the vertical.
	ParamHeading = "heading"

	// ParamHipHeight is the height of the hips above the snow.
	ParamHipHeight = "hip_height"

	// ParamHipBend swings both thighs forward for negative values.
	ParamHipBend = "hip_bend"

	// ParamKnee bends both knees.
	ParamKnee = "knee"

	// ParamAnkle tilts both skis; it should be -(hip_bend + knee)
	// to keep them flat.
	ParamAnkle = "ankle"

	// ParamLean leans the torso forward for positive values.
	ParamLean = "lean"

	// ParamShoulderL and ParamShoulderR swing the arms forward for
	// negative values.
	ParamShoulderL = "shoulder_l"
	ParamShoulderR = "shoulder_r"

	// ParamLook turns the head about the vertical.
	ParamLook = "look"
)

// Params returns the names of all skier parameters.
func Params() []string {
	return []string{ParamHeading, ParamHipHeight, ParamHipBend, ParamKnee, ParamAnkle,
		ParamLean, ParamShoulderL, ParamShoulderR, ParamLook}
}

// Colors are the colors of a skier.
type Colors struct {
	Jacket, Pants, Skin, Bib           color.RGBA
	Helmet, Visor, Goggles             color.RGBA
	Gloves, Boots, Skis, Poles, Shadow color.RGBA
}

// fields returns the palette name of each color.
func (c *Colors) fields() map[string]*color.RGBA {
	return map[string]*color.RGBA{
		"jacket": &c.Jacket, "pants": &c.Pants, "skin": &c.Skin, "bib": &c.Bib,
		"helmet": &c.Helmet, "visor": &c.Visor, "goggles": &c.Goggles,
		"gloves": &c.Gloves, "boots": &c.Boots, "skis": &c.Skis, "poles": &c.Poles,
		"shadow": &c.Shadow,
	}
}

// ColorsFrom returns the skier colors from the palette of the settings.
func ColorsFrom(s *config.Settings) (Colors, error) {
	var c Colors
	var errs []error
	for name, dst := range c.fields() {
		v, err := s.Color(name)
		errs = append(errs, err)
		*dst = v
	}
	return c, errors.Join(errs...)
}

// Layers are the draw layers of the parts of a skier.
type Layers struct {

	// Shadow is the shadow on the snow.
	Shadow int

	// Skis are the skis, drawn under the body.
	Skis int

	// Body is the body, arms, head and poles.
	Body int

	// Detail is the bib, goggles and visor, drawn over the body.
	Detail int
}

// LayersFrom returns the skier layers from the layer names
// "shadow", "back", "body" and "front" of the settings.
func LayersFrom(s *config.Settings) (Layers, error) {
	var l Layers
	var errs []error
	for name, dst := range map[string]*int{"shadow": &l.Shadow, "back": &l.Skis, "body": &l.Body, "front": &l.Detail} {
		v, err := s.Layer(name)
		errs = append(errs, err)
		*dst = v
	}
	return l, errors.Join(errs...)
}

// Options configure a new skier.
type Options struct {

	// Prefix is prepended to the frame and parameter names, so that
	// several skiers can share a renderer.
	Prefix string

	// Position is the world position of the skier's feet.
	Position mgl64.Vec3

	Colors Colors
	Layers Layers
}

// OptionsFrom returns skier options with the colors and layers of the
// settings.
func OptionsFrom(s *config.Settings) (Options, error) {
	c, err := ColorsFrom(s)
	if err != nil {
		return Options{}, err
	}
	l, err := LayersFrom(s)
	if err != nil {
		return Options{}, err
	}
	return Options{Colors: c, Layers: l}, nil
}

// DefaultOptions returns skier options from [config.Defaults].
func DefaultOptions() Options {
	return errors.Log1(OptionsFrom(config.Defaults()))
}

// Skier is an articulated skier. Its root frame is named "skier" and
// its dynamic frames are named by their parameters, all with the
// options prefix. Hips, Torso and Head are the frames driven by
// [ParamHipHeight], [ParamLean] and [ParamLook].
type Skier struct {
	Options

	Root, Hips, Torso, Head frame.Frame

	Helmet  *shape.Hemisphere
	Visor   *shape.CylinderProjection
	Goggles [2]*shape.Circle
	Skis    [2]*shape.LineSegment
}

// Skier dimensions in meters.
const (
	hipWidth     = 0.11
	thighLength  = 0.42
	shinLength   = 0.42
	torsoLength  = 0.55
	shoulderY    = 0.2
	upperArm     = 0.28
	forearm      = 0.26
	skiHalf      = 0.8
	helmetRadius = 0.13
)

// NewSkier builds a skier in the renderer. It returns the authoring
// errors that occurred while building it, in which case the skier
// is incomplete.
func NewSkier(r *scene.Renderer, opts Options) (*Skier, error) {
	mark := r.Checkpoint()
	sk := &Skier{Options: opts}
	sk.build(r)
	if err := r.ErrSince(mark); err != nil {
		return nil, fmt.Errorf("models.NewSkier %q: %w", opts.Prefix, err)
	}
	return sk, nil
}

// Param returns the name of the given parameter for this skier.
func (sk *Skier) Param(name string) string {
	return sk.Prefix + name
}

// Pose returns parameters for a standing pose with the given crouch,
// from 0 upright to 1 deep, keeping the skis flat on the snow.
func (sk *Skier) Pose(crouch float64) map[string]float64 {
	bend := 0.2 + 0.8*crouch
	hip := -bend
	knee := 2 * bend
	return map[string]float64{
		sk.Param(ParamHipHeight): 0.05 + (thighLength+shinLength)*math.Cos(bend),
		sk.Param(ParamHipBend):   hip,
		sk.Param(ParamKnee):      knee,
		sk.Param(ParamAnkle):     -(hip + knee),
		sk.Param(ParamLean):      bend,
	}
}

func (sk *Skier) build(r *scene.Renderer) {
	c, l := sk.Colors, sk.Layers
	p := sk.Position
	sk.Root = r.NewFrame().Translate(p[0], p[1], p[2]).SetName(sk.Prefix + "skier")
	body := sk.Root.DynamicRotateAboutZ(sk.Param(ParamHeading), 0)
	r.Circle(body, mgl64.Vec3{0, 0, 0.005}, 0.5, c.Shadow, l.Shadow)

	pose := sk.Pose(0)
	sk.Hips = body.DynamicTranslate(sk.Param(ParamHipHeight), 0, 0, pose[sk.Param(ParamHipHeight)])
	sk.legs(r, pose)

	sk.Torso = sk.Hips.DynamicRotateAboutY(sk.Param(ParamLean), pose[sk.Param(ParamLean)])
	r.BodySegment(sk.Torso,
		shape.Endpoint{Radius: 0.15, Color: c.Pants},
		shape.Endpoint{Pos: mgl64.Vec3{0, 0, torsoLength}, Radius: 0.17, Color: c.Jacket},
		c.Jacket, l.Body)
	r.Polygon(sk.Torso, []mgl64.Vec3{
		{0.17, -0.08, 0.18}, {0.17, 0.08, 0.18}, {0.18, 0.08, 0.42}, {0.18, -0.08, 0.42},
	}, c.Bib, l.Detail)

	sk.arm(r, 1, ParamShoulderL)
	sk.arm(r, -1, ParamShoulderR)
	sk.head(r)
}

// legs builds both legs and skis, authoring the left side and
// mirroring it about the hips.
func (sk *Skier) legs(r *scene.Renderer, pose map[string]float64) {
	c, l := sk.Colors, sk.Layers
	thigh := sk.Hips.DynamicRotateAboutY(sk.Param(ParamHipBend), pose[sk.Param(ParamHipBend)])
	left := r.BodySegment(thigh,
		shape.Endpoint{Pos: mgl64.Vec3{0, hipWidth, 0}, Radius: 0.085},
		shape.Endpoint{Pos: mgl64.Vec3{0, hipWidth, -thighLength}, Radius: 0.065},
		c.Pants, l.Body)
	r.MirrorAboutY(left, l.Body)

	shin := thigh.Translate(0, 0, -thighLength).DynamicRotateAboutY(sk.Param(ParamKnee), pose[sk.Param(ParamKnee)])
	left = r.BodySegment(shin,
		shape.Endpoint{Pos: mgl64.Vec3{0, hipWidth, 0}, Radius: 0.065, SkipCap: true},
		shape.Endpoint{Pos: mgl64.Vec3{0, hipWidth, -shinLength}, Radius: 0.06, Color: c.Boots},
		c.Pants, l.Body)
	r.MirrorAboutY(left, l.Body)

	foot := shin.Translate(0, 0, -shinLength).DynamicRotateAboutY(sk.Param(ParamAnkle), pose[sk.Param(ParamAnkle)])
	r.Ball(foot, mgl64.Vec3{0.04, hipWidth, -0.02}, 0.07, c.Boots, l.Body)
	r.Ball(foot, mgl64.Vec3{0.04, -hipWidth, -0.02}, 0.07, c.Boots, l.Body)

	sk.Skis[0] = r.LineSegment(foot, []mgl64.Vec3{
		{-skiHalf, hipWidth, -0.05}, {skiHalf, hipWidth, -0.05}, {skiHalf + 0.12, hipWidth, 0.02},
	}, 0.07, c.Skis, l.Skis)
	if m, ok := r.MirrorAboutY(sk.Skis[0], l.Skis).(*shape.LineSegment); ok {
		sk.Skis[1] = m
	}
}

// arm builds one arm with its pole on the given side, +1 for left.
func (sk *Skier) arm(r *scene.Renderer, side float64, param string) {
	c, l := sk.Colors, sk.Layers
	shoulder := sk.Torso.Translate(0, side*shoulderY, torsoLength-0.07).DynamicRotateAboutY(sk.Param(param), -0.3)
	r.BodySegment(shoulder,
		shape.Endpoint{Radius: 0.06},
		shape.Endpoint{Pos: mgl64.Vec3{0, side * 0.03, -upperArm}, Radius: 0.05},
		c.Jacket, l.Body)
	elbow := shoulder.Translate(0, side*0.03, -upperArm).RotateAboutY(-0.9)
	r.BodySegment(elbow,
		shape.Endpoint{Radius: 0.05, SkipCap: true},
		shape.Endpoint{Pos: mgl64.Vec3{0, 0, -forearm}, Radius: 0.045, Color: c.Gloves},
		c.Jacket, l.Body)
	hand := elbow.Translate(0, 0, -forearm).RotateAboutY(1.2)
	r.Ball(hand, mgl64.Vec3{}, 0.05, c.Gloves, l.Body)
	r.LineSegment(hand, []mgl64.Vec3{{0, 0, 0.08}, {-0.05, 0, -1.05}}, 0.025, c.Poles, l.Body)
	r.Circle(hand, mgl64.Vec3{-0.045, 0, -0.95}, 0.05, c.Poles, l.Body)
}

// head builds the head, the helmet with its visor band and
// the goggles.
func (sk *Skier) head(r *scene.Renderer) {
	c, l := sk.Colors, sk.Layers
	sk.Head = sk.Torso.Translate(0, 0, torsoLength+0.08).DynamicRotateAboutZ(sk.Param(ParamLook), 0)
	r.Ball(sk.Head, mgl64.Vec3{0, 0, 0.1}, 0.12, c.Skin, l.Body)

	helmet := sk.Head.Translate(0, 0, 0.13)
	sk.Helmet = r.Hemisphere(helmet, helmetRadius, helmetRadius+0.015, c.Helmet, color.RGBA{}, l.Body)

	// the visor wraps the front half, which faces +X, at angle π
	visor := helmet.Translate(0, 0, -0.07).RotateAboutZ(math.Pi)
	sk.Visor = r.CylinderProjection(visor,
		mgl64.Vec2{helmetRadius + 0.01, helmetRadius + 0.01}, mgl64.Vec2{helmetRadius, helmetRadius}, 0.08,
		[]shape.ProfilePoint{{Angle: math.Pi / 2, Height: 0.5}, {Angle: 3 * math.Pi / 4, Height: 0.9}, {Angle: math.Pi, Height: 1}, {Angle: 5 * math.Pi / 4, Height: 0.9}, {Angle: 3 * math.Pi / 2, Height: 0.5}},
		0.1, c.Visor, l.Detail)

	// goggle lenses lie in the XY plane of a frame facing +X
	face := sk.Head.Translate(0.115, 0, 0.12).RotateAboutY(math.Pi / 2)
	sk.Goggles[0] = r.Circle(face, mgl64.Vec3{0, 0.045, 0}, 0.04, c.Goggles, l.Detail)
	if m, ok := r.MirrorAboutY(sk.Goggles[0], l.Detail).(*shape.Circle); ok {
		sk.Goggles[1] = m
	}
}
