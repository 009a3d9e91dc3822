//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package engine builds the flattened sky that a renderer consumes from the
// editable document and evaluates controllers into layer values.
package engine

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/timburks/skye/pkg/curve"
	"github.com/timburks/skye/pkg/sky"
	skye "github.com/timburks/skye/pkg/types"
)

// Sky is a self-contained snapshot of a document. References between
// entities are list indices.
type Sky struct {
	BgColor     skye.Color   `yaml:"background"`
	DrawCompass bool         `yaml:"compass"`
	Controllers []Controller `yaml:"controllers"`
	Links       []Link       `yaml:"links"`
	Layers      []Layer      `yaml:"layers"`
}

type Controller struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Minimum float32 `yaml:"minimum"`
	Maximum float32 `yaml:"maximum"`
	Value   float32 `yaml:"value"`
	Clamp   bool    `yaml:"clamp"`
	Frozen  bool    `yaml:"frozen"`
}

type Link struct {
	ID         string       `yaml:"id"`
	Name       string       `yaml:"name"`
	Controller int          `yaml:"controller"` // -1 for none
	Repeat     int          `yaml:"repeat"`
	Curve      curve.Bezier `yaml:"curve"`
}

// Layer angles are in radians.
type Layer struct {
	ID               string      `yaml:"id"`
	Name             string      `yaml:"name"`
	Skin             string      `yaml:"skin,omitempty"`
	Offset           skye.Vector `yaml:"offset"`
	Orientation      skye.Vector `yaml:"orientation"`
	Rotation         skye.Vector `yaml:"rotation"`
	Color            skye.Color  `yaml:"color"`
	Intensity        float32     `yaml:"intensity"`
	Transparency     float32     `yaml:"transparency"`
	MulBySkyLight    bool        `yaml:"mulBySkyLight"`
	MulBySkyColor    bool        `yaml:"mulBySkyColor"`
	LightOrientation skye.Vector `yaml:"lightOrientation"`
	LightColor       skye.Color  `yaml:"lightColor"`
	LightIntensity   float32     `yaml:"lightIntensity"`
	AmbientIntensity float32     `yaml:"ambientIntensity"`
	Bodies           []Body      `yaml:"bodies,omitempty"`
	Targets          []Target    `yaml:"targets,omitempty"`
}

// Body angles are in radians.
type Body struct {
	ID          string       `yaml:"id"`
	Skin        string       `yaml:"skin,omitempty"`
	Orientation skye.Vector  `yaml:"orientation"`
	Size        skye.Vector2 `yaml:"size"`
	Color       skye.Color   `yaml:"color"`
}

// A Target lists the links driving one layer property. Only targets with
// links are part of a snapshot.
type Target struct {
	Target skye.Target `yaml:"-"`
	Name   string      `yaml:"name"`
	Links  []int       `yaml:"links"`
}

func radians(v skye.Vector) skye.Vector {
	return skye.Vector{X: skye.DegToRad(v.X), Y: skye.DegToRad(v.Y), Z: skye.DegToRad(v.Z)}
}

// Build flattens a document. It fails if a link uses a controller or a
// target uses a link that is not part of the sky.
func Build(s *sky.Sky) (*Sky, error) {
	if s == nil {
		return nil, errors.New("engine: no sky")
	}
	out := &Sky{
		BgColor:     s.GetBgColor(),
		DrawCompass: s.GetDrawCompass(),
	}

	for _, c := range s.GetControllers() {
		out.Controllers = append(out.Controllers, Controller{
			ID:      c.GetID().String(),
			Name:    c.GetName(),
			Minimum: c.GetMinimumValue(),
			Maximum: c.GetMaximumValue(),
			Value:   c.GetCurrentValue(),
			Clamp:   c.GetClamp(),
			Frozen:  c.GetFrozen(),
		})
	}

	for _, link := range s.GetLinks() {
		controller := -1
		if c := link.GetController(); c != nil {
			if c.GetSky() != s {
				return nil, errors.Errorf("link %q uses controller %q which is not part of the sky",
					link.GetName(), c.GetName())
			}
			controller = c.GetIndex()
		}
		out.Links = append(out.Links, Link{
			ID:         link.GetID().String(),
			Name:       link.GetName(),
			Controller: controller,
			Repeat:     link.GetRepeat(),
			Curve:      link.GetCurve(),
		})
	}

	for _, layer := range s.GetLayers() {
		l, err := buildLayer(s, layer)
		if err != nil {
			return nil, err
		}
		out.Layers = append(out.Layers, l)
	}

	log.Debugf("engine: built sky with %d controllers, %d links, %d layers",
		len(out.Controllers), len(out.Links), len(out.Layers))
	return out, nil
}

func buildLayer(s *sky.Sky, layer *sky.Layer) (Layer, error) {
	l := Layer{
		ID:               layer.GetID().String(),
		Name:             layer.GetName(),
		Skin:             layer.GetSkinPath(),
		Offset:           layer.GetOffset(),
		Orientation:      radians(layer.GetOrientation()),
		Color:            layer.GetColor(),
		Intensity:        layer.GetIntensity(),
		Transparency:     layer.GetTransparency(),
		MulBySkyLight:    layer.GetMulBySkyLight(),
		MulBySkyColor:    layer.GetMulBySkyColor(),
		LightOrientation: radians(layer.GetLightOrientation()),
		LightColor:       layer.GetLightColor(),
		LightIntensity:   layer.GetLightIntensity(),
		AmbientIntensity: layer.GetAmbientIntensity(),
	}

	for _, body := range layer.GetBodies() {
		size := body.GetSize()
		l.Bodies = append(l.Bodies, Body{
			ID:          body.GetID().String(),
			Skin:        body.GetSkinPath(),
			Orientation: radians(body.GetOrientation()),
			Size:        skye.Vector2{X: skye.DegToRad(size.X), Y: skye.DegToRad(size.Y)},
			Color:       body.GetColor(),
		})
	}

	for t := skye.Target(0); t < skye.TargetCount; t++ {
		links := layer.GetTarget(t).GetLinks()
		if len(links) == 0 {
			continue
		}
		target := Target{Target: t, Name: t.String()}
		for _, link := range links {
			if link.GetSky() != s {
				return Layer{}, errors.Errorf("target %q of layer %q uses link %q which is not part of the sky",
					t, layer.GetName(), link.GetName())
			}
			target.Links = append(target.Links, link.GetIndex())
		}
		l.Targets = append(l.Targets, target)
	}
	return l, nil
}

// YAML formats the snapshot for inspection.
func (s *Sky) YAML() ([]byte, error) {
	b, err := yaml.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "engine: marshal sky")
	}
	return b, nil
}
