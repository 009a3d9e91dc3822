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

package commander

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/steelseries/golisp"

	"github.com/timburks/skye/pkg/curve"
	"github.com/timburks/skye/pkg/operations"
	"github.com/timburks/skye/pkg/sky"
	skye "github.com/timburks/skye/pkg/types"
)

// active is the commander that primitives act on. golisp primitives are
// global, so a commander sets itself here before it evaluates anything.
var active *Commander

type primitive func(c *Commander, args *golisp.Data) (*golisp.Data, error)

func define(name, argCount string, f primitive) {
	golisp.MakePrimitiveFunction(name, argCount,
		func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			if active == nil {
				return nil, errors.Errorf("%s: no editor", name)
			}
			return f(active, args)
		})
}

func init() {
	defineEditorPrimitives()
	defineControllerPrimitives()
	defineLinkPrimitives()
	defineLayerPrimitives()
	defineBodyPrimitives()
	defineTargetPrimitives()
}

// parseEval evaluates lisp source and returns the printed result or the
// error message.
func (c *Commander) parseEval(source string) string {
	active = c
	value, err := golisp.ParseAndEval(source)
	if err != nil {
		log.Warnf("commander: %s: %v", source, err)
		return err.Error()
	}
	return golisp.String(value)
}

// ParseEval evaluates lisp source.
func (c *Commander) ParseEval(source string) (string, error) {
	active = c
	value, err := golisp.ParseAndEval(source)
	if err != nil {
		return "", err
	}
	return golisp.String(value), nil
}

// ParseEvalFile evaluates every expression of a lisp file in order.
func (c *Commander) ParseEvalFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "source %s", path)
	}
	if _, err := c.ParseEval("(begin " + string(b) + "\n)"); err != nil {
		return errors.Wrapf(err, "source %s", path)
	}
	return nil
}

// perform runs u through the editor and returns its description.
func (c *Commander) perform(u skye.Undoable) (*golisp.Data, error) {
	c.editor.Perform(u)
	return golisp.StringWithValue(u.GetInfo()), nil
}

func (c *Commander) sky() *sky.Sky {
	return c.editor.GetSky()
}

// Arguments

func nth(args *golisp.Data, n int) *golisp.Data {
	for i := 0; i < n; i++ {
		args = golisp.Cdr(args)
	}
	return golisp.Car(args)
}

func length(args *golisp.Data) int {
	n := 0
	for d := args; !golisp.NilP(d); d = golisp.Cdr(d) {
		n++
	}
	return n
}

func stringArg(args *golisp.Data, n int) (string, error) {
	d := nth(args, n)
	if !golisp.StringP(d) {
		return "", errors.Errorf("argument %d must be a string", n+1)
	}
	return golisp.StringValue(d), nil
}

func numberArg(args *golisp.Data, n int) (float32, error) {
	d := nth(args, n)
	switch {
	case golisp.IntegerP(d):
		return float32(golisp.IntegerValue(d)), nil
	case golisp.FloatP(d):
		return golisp.FloatValue(d), nil
	default:
		return 0, errors.Errorf("argument %d must be a number", n+1)
	}
}

func intArg(args *golisp.Data, n int) (int, error) {
	d := nth(args, n)
	if !golisp.IntegerP(d) {
		return 0, errors.Errorf("argument %d must be an integer", n+1)
	}
	return int(golisp.IntegerValue(d)), nil
}

func vectorArg(args *golisp.Data) (skye.Vector, error) {
	var v [3]float32
	for i := range v {
		value, err := numberArg(args, i)
		if err != nil {
			return skye.Vector{}, err
		}
		v[i] = value
	}
	return skye.Vector{X: v[0], Y: v[1], Z: v[2]}, nil
}

func colorArg(args *golisp.Data, n int) (skye.Color, error) {
	text, err := stringArg(args, n)
	if err != nil {
		return skye.Color{}, err
	}
	return skye.ParseColor(text)
}

func targetArg(args *golisp.Data, n int) (skye.Target, error) {
	name, err := stringArg(args, n)
	if err != nil {
		return 0, err
	}
	return skye.ParseTarget(name)
}

func integer(n int) *golisp.Data {
	return golisp.IntegerWithValue(int64(n))
}

func index(what string, i, count int) error {
	if i < 0 || i >= count {
		return errors.Errorf("%s %d does not exist", what, i)
	}
	return nil
}

// Editor

func defineEditorPrimitives() {
	define("undo", "0", func(c *Commander, _ *golisp.Data) (*golisp.Data, error) {
		return golisp.BooleanWithValue(c.editor.PerformUndo()), nil
	})
	define("redo", "0", func(c *Commander, _ *golisp.Data) (*golisp.Data, error) {
		return golisp.BooleanWithValue(c.editor.PerformRedo()), nil
	})
	define("new-sky", "0", func(c *Commander, _ *golisp.Data) (*golisp.Data, error) {
		c.editor.NewSky()
		return nil, nil
	})
	define("sky-changed", "0", func(c *Commander, _ *golisp.Data) (*golisp.Data, error) {
		return golisp.BooleanWithValue(c.sky().GetChanged()), nil
	})
	define("sky-set-bg-color", "1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		color, err := colorArg(args, 0)
		if err != nil {
			return nil, err
		}
		return c.perform(operations.NewSkySetBgColor(c.sky(), color))
	})
	define("sky-set-compass", "1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		d := nth(args, 0)
		if !golisp.BooleanP(d) {
			return nil, errors.New("argument 1 must be a boolean")
		}
		c.sky().SetDrawCompass(golisp.BooleanValue(d))
		return d, nil
	})
	define("panel", "1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		number, err := intArg(args, 0)
		if err != nil {
			return nil, err
		}
		return nil, c.editor.SelectPanel(number - 1)
	})
	define("info", "0", func(c *Commander, _ *golisp.Data) (*golisp.Data, error) {
		return golisp.StringWithValue(c.editor.Info()), nil
	})
	define("dump", "1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		path, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		return nil, c.editor.Dump(path)
	})
	define("message", "1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		text, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		c.message = text
		return nil, nil
	})
}

// Controllers

func (c *Commander) controller() (*sky.Controller, error) {
	if controller := c.sky().GetActiveController(); controller != nil {
		return controller, nil
	}
	return nil, errors.New("no active controller")
}

// controllerAction defines a primitive performing the operation that f
// creates for the active controller.
func controllerAction(name, argCount string, f func(*sky.Controller, *golisp.Data) (skye.Undoable, error)) {
	define(name, argCount, func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		controller, err := c.controller()
		if err != nil {
			return nil, err
		}
		u, err := f(controller, args)
		if err != nil {
			return nil, err
		}
		return c.perform(u)
	})
}

func defineControllerPrimitives() {
	define("controller-add", "*", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		name := "Controller"
		if length(args) > 0 {
			var err error
			if name, err = stringArg(args, 0); err != nil {
				return nil, err
			}
		}
		return c.perform(operations.NewControllerAdd(c.sky(), sky.NewController(name)))
	})
	controllerAction("controller-remove", "0", func(controller *sky.Controller, _ *golisp.Data) (skye.Undoable, error) {
		return operations.NewControllerRemove(controller), nil
	})
	controllerAction("controller-move-up", "0", func(controller *sky.Controller, _ *golisp.Data) (skye.Undoable, error) {
		if controller.GetIndex() == 0 {
			return nil, errors.New("controller is already first")
		}
		return operations.NewControllerMoveUp(controller), nil
	})
	controllerAction("controller-move-down", "0", func(controller *sky.Controller, _ *golisp.Data) (skye.Undoable, error) {
		if controller.GetIndex() == controller.GetSky().GetControllerCount()-1 {
			return nil, errors.New("controller is already last")
		}
		return operations.NewControllerMoveDown(controller), nil
	})
	controllerAction("controller-set-name", "1", func(controller *sky.Controller, args *golisp.Data) (skye.Undoable, error) {
		name, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		return operations.NewControllerSetName(controller, name), nil
	})
	controllerAction("controller-set-minimum", "1", func(controller *sky.Controller, args *golisp.Data) (skye.Undoable, error) {
		value, err := numberArg(args, 0)
		if err != nil {
			return nil, err
		}
		return operations.NewControllerSetMinimum(controller, value), nil
	})
	controllerAction("controller-set-maximum", "1", func(controller *sky.Controller, args *golisp.Data) (skye.Undoable, error) {
		value, err := numberArg(args, 0)
		if err != nil {
			return nil, err
		}
		return operations.NewControllerSetMaximum(controller, value), nil
	})
	controllerAction("controller-set-range", "2", func(controller *sky.Controller, args *golisp.Data) (skye.Undoable, error) {
		minimum, err := numberArg(args, 0)
		if err != nil {
			return nil, err
		}
		maximum, err := numberArg(args, 1)
		if err != nil {
			return nil, err
		}
		return operations.NewControllerSetRange(controller, minimum, maximum), nil
	})
	controllerAction("controller-set-value", "1", func(controller *sky.Controller, args *golisp.Data) (skye.Undoable, error) {
		value, err := numberArg(args, 0)
		if err != nil {
			return nil, err
		}
		if controller.GetFrozen() {
			return nil, errors.Errorf("controller %s is frozen", controller.GetName())
		}
		return operations.NewControllerSetValue(controller, value), nil
	})
	controllerAction("controller-toggle-clamp", "0", func(controller *sky.Controller, _ *golisp.Data) (skye.Undoable, error) {
		return operations.NewControllerToggleClamp(controller), nil
	})
	controllerAction("controller-toggle-frozen", "0", func(controller *sky.Controller, _ *golisp.Data) (skye.Undoable, error) {
		return operations.NewControllerToggleFrozen(controller), nil
	})
	define("controller-select", "1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		i, err := intArg(args, 0)
		if err != nil {
			return nil, err
		}
		if err := index("controller", i, c.sky().GetControllerCount()); err != nil {
			return nil, err
		}
		c.sky().SetActiveController(c.sky().GetControllerAt(i))
		return integer(i), nil
	})
	define("controller-count", "0", func(c *Commander, _ *golisp.Data) (*golisp.Data, error) {
		return integer(c.sky().GetControllerCount()), nil
	})
	define("controller-name", "0", func(c *Commander, _ *golisp.Data) (*golisp.Data, error) {
		controller, err := c.controller()
		if err != nil {
			return nil, err
		}
		return golisp.StringWithValue(controller.GetName()), nil
	})
	define("controller-value", "0", func(c *Commander, _ *golisp.Data) (*golisp.Data, error) {
		controller, err := c.controller()
		if err != nil {
			return nil, err
		}
		return golisp.FloatWithValue(controller.GetCurrentValue()), nil
	})
}

// Links

func (c *Commander) link() (*sky.Link, error) {
	if link := c.sky().GetActiveLink(); link != nil {
		return link, nil
	}
	return nil, errors.New("no active link")
}

// controllerArg returns the controller at the index in argument n, or nil
// for -1.
func (c *Commander) controllerArg(args *golisp.Data, n int) (*sky.Controller, error) {
	i, err := intArg(args, n)
	if err != nil {
		return nil, err
	}
	if i == -1 {
		return nil, nil
	}
	if err := index("controller", i, c.sky().GetControllerCount()); err != nil {
		return nil, err
	}
	return c.sky().GetControllerAt(i), nil
}

func linkAction(name, argCount string, f func(*Commander, *sky.Link, *golisp.Data) (skye.Undoable, error)) {
	define(name, argCount, func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		link, err := c.link()
		if err != nil {
			return nil, err
		}
		u, err := f(c, link, args)
		if err != nil {
			return nil, err
		}
		return c.perform(u)
	})
}

func defineLinkPrimitives() {
	define("link-add", "*", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		link := sky.NewLink("Link")
		if length(args) > 0 {
			name, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			link.SetName(name)
		}
		if length(args) > 1 {
			controller, err := c.controllerArg(args, 1)
			if err != nil {
				return nil, err
			}
			link.SetController(controller)
		}
		return c.perform(operations.NewLinkAdd(c.sky(), link))
	})
	linkAction("link-remove", "0", func(_ *Commander, link *sky.Link, _ *golisp.Data) (skye.Undoable, error) {
		return operations.NewLinkRemove(link), nil
	})
	linkAction("link-move-up", "0", func(_ *Commander, link *sky.Link, _ *golisp.Data) (skye.Undoable, error) {
		if link.GetIndex() == 0 {
			return nil, errors.New("link is already first")
		}
		return operations.NewLinkMoveUp(link), nil
	})
	linkAction("link-move-down", "0", func(_ *Commander, link *sky.Link, _ *golisp.Data) (skye.Undoable, error) {
		if link.GetIndex() == link.GetSky().GetLinkCount()-1 {
			return nil, errors.New("link is already last")
		}
		return operations.NewLinkMoveDown(link), nil
	})
	linkAction("link-set-name", "1", func(_ *Commander, link *sky.Link, args *golisp.Data) (skye.Undoable, error) {
		name, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		return operations.NewLinkSetName(link, name), nil
	})
	linkAction("link-set-controller", "1", func(c *Commander, link *sky.Link, args *golisp.Data) (skye.Undoable, error) {
		controller, err := c.controllerArg(args, 0)
		if err != nil {
			return nil, err
		}
		return operations.NewLinkSetController(link, controller), nil
	})
	linkAction("link-set-repeat", "1", func(_ *Commander, link *sky.Link, args *golisp.Data) (skye.Undoable, error) {
		repeat, err := intArg(args, 0)
		if err != nil {
			return nil, err
		}
		if repeat < 1 {
			return nil, errors.Errorf("repeat %d is less than 1", repeat)
		}
		return operations.NewLinkSetRepeat(link, repeat), nil
	})
	linkAction("link-set-curve", "*", func(_ *Commander, link *sky.Link, args *golisp.Data) (skye.Undoable, error) {
		points, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		interpolation := link.GetCurve().Interpolation
		if length(args) > 1 {
			if interpolation, err = intArg(args, 1); err != nil {
				return nil, err
			}
			if interpolation < curve.InterpolateConstant || interpolation > curve.InterpolateBezier {
				return nil, errors.Errorf("unknown interpolation %d", interpolation)
			}
		}
		c, err := curve.Parse(points, interpolation)
		if err != nil {
			return nil, err
		}
		return operations.NewLinkSetCurve(link, c), nil
	})
	define("link-select", "1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		i, err := intArg(args, 0)
		if err != nil {
			return nil, err
		}
		if err := index("link", i, c.sky().GetLinkCount()); err != nil {
			return nil, err
		}
		c.sky().SetActiveLink(c.sky().GetLinkAt(i))
		return integer(i), nil
	})
	define("link-count", "0", func(c *Commander, _ *golisp.Data) (*golisp.Data, error) {
		return integer(c.sky().GetLinkCount()), nil
	})
	define("link-name", "0", func(c *Commander, _ *golisp.Data) (*golisp.Data, error) {
		link, err := c.link()
		if err != nil {
			return nil, err
		}
		return golisp.StringWithValue(link.GetName()), nil
	})
}

// Layers

func (c *Commander) layer() (*sky.Layer, error) {
	if layer := c.sky().GetActiveLayer(); layer != nil {
		return layer, nil
	}
	return nil, errors.New("no active layer")
}

func layerAction(name, argCount string, f func(*sky.Layer, *golisp.Data) (skye.Undoable, error)) {
	define(name, argCount, func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		layer, err := c.layer()
		if err != nil {
			return nil, err
		}
		u, err := f(layer, args)
		if err != nil {
			return nil, err
		}
		return c.perform(u)
	})
}

func layerString(name string, f func(*sky.Layer, string) skye.Undoable) {
	layerAction(name, "1", func(layer *sky.Layer, args *golisp.Data) (skye.Undoable, error) {
		text, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		return f(layer, text), nil
	})
}

func layerNumber(name string, f func(*sky.Layer, float32) skye.Undoable) {
	layerAction(name, "1", func(layer *sky.Layer, args *golisp.Data) (skye.Undoable, error) {
		value, err := numberArg(args, 0)
		if err != nil {
			return nil, err
		}
		return f(layer, value), nil
	})
}

func layerVector(name string, f func(*sky.Layer, skye.Vector) skye.Undoable) {
	layerAction(name, "3", func(layer *sky.Layer, args *golisp.Data) (skye.Undoable, error) {
		v, err := vectorArg(args)
		if err != nil {
			return nil, err
		}
		return f(layer, v), nil
	})
}

func layerColor(name string, f func(*sky.Layer, skye.Color) skye.Undoable) {
	layerAction(name, "1", func(layer *sky.Layer, args *golisp.Data) (skye.Undoable, error) {
		color, err := colorArg(args, 0)
		if err != nil {
			return nil, err
		}
		return f(layer, color), nil
	})
}

func defineLayerPrimitives() {
	define("layer-add", "*", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		name := "Layer"
		if length(args) > 0 {
			var err error
			if name, err = stringArg(args, 0); err != nil {
				return nil, err
			}
		}
		return c.perform(operations.NewLayerAdd(c.sky(), sky.NewLayer(name)))
	})
	layerAction("layer-remove", "0", func(layer *sky.Layer, _ *golisp.Data) (skye.Undoable, error) {
		return operations.NewLayerRemove(layer), nil
	})
	layerAction("layer-move-up", "0", func(layer *sky.Layer, _ *golisp.Data) (skye.Undoable, error) {
		if layer.GetIndex() == 0 {
			return nil, errors.New("layer is already first")
		}
		return operations.NewLayerMoveUp(layer), nil
	})
	layerAction("layer-move-down", "0", func(layer *sky.Layer, _ *golisp.Data) (skye.Undoable, error) {
		if layer.GetIndex() == layer.GetSky().GetLayerCount()-1 {
			return nil, errors.New("layer is already last")
		}
		return operations.NewLayerMoveDown(layer), nil
	})
	layerString("layer-set-name", func(l *sky.Layer, s string) skye.Undoable {
		return operations.NewLayerSetName(l, s)
	})
	layerString("layer-set-skin", func(l *sky.Layer, s string) skye.Undoable {
		return operations.NewLayerSetSkin(l, s)
	})
	layerVector("layer-set-offset", func(l *sky.Layer, v skye.Vector) skye.Undoable {
		return operations.NewLayerSetOffset(l, v)
	})
	layerVector("layer-set-orientation", func(l *sky.Layer, v skye.Vector) skye.Undoable {
		return operations.NewLayerSetOrientation(l, v)
	})
	layerVector("layer-set-light-orientation", func(l *sky.Layer, v skye.Vector) skye.Undoable {
		return operations.NewLayerSetLightOrientation(l, v)
	})
	layerColor("layer-set-color", func(l *sky.Layer, color skye.Color) skye.Undoable {
		return operations.NewLayerSetColor(l, color)
	})
	layerColor("layer-set-light-color", func(l *sky.Layer, color skye.Color) skye.Undoable {
		return operations.NewLayerSetLightColor(l, color)
	})
	layerNumber("layer-set-intensity", func(l *sky.Layer, value float32) skye.Undoable {
		return operations.NewLayerSetIntensity(l, value)
	})
	layerNumber("layer-set-transparency", func(l *sky.Layer, value float32) skye.Undoable {
		return operations.NewLayerSetTransparency(l, value)
	})
	layerNumber("layer-set-light-intensity", func(l *sky.Layer, value float32) skye.Undoable {
		return operations.NewLayerSetLightIntensity(l, value)
	})
	layerNumber("layer-set-ambient-intensity", func(l *sky.Layer, value float32) skye.Undoable {
		return operations.NewLayerSetAmbientIntensity(l, value)
	})
	layerAction("layer-toggle-mul-by-sky-light", "0", func(layer *sky.Layer, _ *golisp.Data) (skye.Undoable, error) {
		return operations.NewLayerToggleMulBySkyLight(layer), nil
	})
	layerAction("layer-toggle-mul-by-sky-color", "0", func(layer *sky.Layer, _ *golisp.Data) (skye.Undoable, error) {
		return operations.NewLayerToggleMulBySkyColor(layer), nil
	})
	define("layer-select", "1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		i, err := intArg(args, 0)
		if err != nil {
			return nil, err
		}
		if err := index("layer", i, c.sky().GetLayerCount()); err != nil {
			return nil, err
		}
		c.sky().SetActiveLayer(c.sky().GetLayerAt(i))
		return integer(i), nil
	})
	define("layer-count", "0", func(c *Commander, _ *golisp.Data) (*golisp.Data, error) {
		return integer(c.sky().GetLayerCount()), nil
	})
	define("layer-name", "0", func(c *Commander, _ *golisp.Data) (*golisp.Data, error) {
		layer, err := c.layer()
		if err != nil {
			return nil, err
		}
		return golisp.StringWithValue(layer.GetName()), nil
	})
}

// Bodies

func bodyAction(name, argCount string, f func(*sky.Body, *golisp.Data) (skye.Undoable, error)) {
	layerAction(name, argCount, func(layer *sky.Layer, args *golisp.Data) (skye.Undoable, error) {
		body := layer.GetActiveBody()
		if body == nil {
			return nil, errors.New("no active body")
		}
		return f(body, args)
	})
}

func defineBodyPrimitives() {
	layerAction("body-add", "0", func(layer *sky.Layer, _ *golisp.Data) (skye.Undoable, error) {
		return operations.NewBodyAdd(layer, sky.NewBody()), nil
	})
	bodyAction("body-duplicate", "0", func(body *sky.Body, _ *golisp.Data) (skye.Undoable, error) {
		return operations.NewBodyDuplicate(body), nil
	})
	bodyAction("body-remove", "0", func(body *sky.Body, _ *golisp.Data) (skye.Undoable, error) {
		return operations.NewBodyRemove(body), nil
	})
	bodyAction("body-move-up", "0", func(body *sky.Body, _ *golisp.Data) (skye.Undoable, error) {
		if body.GetIndex() == 0 {
			return nil, errors.New("body is already first")
		}
		return operations.NewBodyMoveUp(body), nil
	})
	bodyAction("body-move-down", "0", func(body *sky.Body, _ *golisp.Data) (skye.Undoable, error) {
		if body.GetIndex() == body.GetLayer().GetBodyCount()-1 {
			return nil, errors.New("body is already last")
		}
		return operations.NewBodyMoveDown(body), nil
	})
	bodyAction("body-set-skin", "1", func(body *sky.Body, args *golisp.Data) (skye.Undoable, error) {
		path, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		return operations.NewBodySetSkin(body, path), nil
	})
	bodyAction("body-set-orientation", "3", func(body *sky.Body, args *golisp.Data) (skye.Undoable, error) {
		v, err := vectorArg(args)
		if err != nil {
			return nil, err
		}
		return operations.NewBodySetOrientation(body, v), nil
	})
	bodyAction("body-set-size", "2", func(body *sky.Body, args *golisp.Data) (skye.Undoable, error) {
		width, err := numberArg(args, 0)
		if err != nil {
			return nil, err
		}
		height, err := numberArg(args, 1)
		if err != nil {
			return nil, err
		}
		return operations.NewBodySetSize(body, skye.Vector2{X: width, Y: height}), nil
	})
	bodyAction("body-set-color", "1", func(body *sky.Body, args *golisp.Data) (skye.Undoable, error) {
		color, err := colorArg(args, 0)
		if err != nil {
			return nil, err
		}
		return operations.NewBodySetColor(body, color), nil
	})
	define("body-select", "1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		layer, err := c.layer()
		if err != nil {
			return nil, err
		}
		i, err := intArg(args, 0)
		if err != nil {
			return nil, err
		}
		if err := index("body", i, layer.GetBodyCount()); err != nil {
			return nil, err
		}
		layer.SetActiveBody(layer.GetBodyAt(i))
		return integer(i), nil
	})
	define("body-count", "0", func(c *Commander, _ *golisp.Data) (*golisp.Data, error) {
		layer, err := c.layer()
		if err != nil {
			return nil, err
		}
		return integer(layer.GetBodyCount()), nil
	})
}

// Targets

// targetLink reads a target name and a link index.
func (c *Commander) targetLink(args *golisp.Data) (skye.Target, *sky.Link, error) {
	target, err := targetArg(args, 0)
	if err != nil {
		return 0, nil, err
	}
	i, err := intArg(args, 1)
	if err != nil {
		return 0, nil, err
	}
	if err := index("link", i, c.sky().GetLinkCount()); err != nil {
		return 0, nil, err
	}
	return target, c.sky().GetLinkAt(i), nil
}

func defineTargetPrimitives() {
	define("target-add-link", "2", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		layer, err := c.layer()
		if err != nil {
			return nil, err
		}
		target, link, err := c.targetLink(args)
		if err != nil {
			return nil, err
		}
		if layer.GetTarget(target).HasLink(link) {
			return nil, errors.Errorf("%s already uses link %q", target, link.GetName())
		}
		return c.perform(operations.NewTargetAddLink(layer, target, link))
	})
	define("target-remove-link", "2", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		layer, err := c.layer()
		if err != nil {
			return nil, err
		}
		target, link, err := c.targetLink(args)
		if err != nil {
			return nil, err
		}
		if !layer.GetTarget(target).HasLink(link) {
			return nil, errors.Errorf("%s does not use link %q", target, link.GetName())
		}
		return c.perform(operations.NewTargetRemoveLink(layer, target, link))
	})
	define("target-select", "1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		layer, err := c.layer()
		if err != nil {
			return nil, err
		}
		target, err := targetArg(args, 0)
		if err != nil {
			return nil, err
		}
		layer.SetActiveTarget(target)
		return golisp.StringWithValue(target.String()), nil
	})
	define("target-link-count", "1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		layer, err := c.layer()
		if err != nil {
			return nil, err
		}
		target, err := targetArg(args, 0)
		if err != nil {
			return nil, err
		}
		return integer(layer.GetTarget(target).GetLinkCount()), nil
	})
}
