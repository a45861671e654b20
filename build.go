package shard

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Render parses descriptor text and builds a Root from it.
func Render(factory ViewFactory, ctx any, text string, opts ...Option) (*Root, error) {
	desc, err := ParseDescriptor(text)
	if err != nil {
		return nil, err
	}
	return Build(factory, ctx, desc, opts...)
}

// Build constructs the view and layout trees for desc, depth first with
// children completed before their parent. On failure every view already
// created is released, newest first, and no Root is returned.
func Build(factory ViewFactory, ctx any, desc *ViewDescriptor, opts ...Option) (*Root, error) {
	cfg, err := newBuildConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("shard: %w", err)
	}
	if factory == nil {
		return nil, newError(ViewCreationError, "", "root", errors.New("nil view factory"))
	}
	if desc == nil {
		return nil, schemaErrorf("root", "nil descriptor")
	}

	r := &Root{
		id:    uuid.NewString(),
		arena: newArena(),
	}
	r.log = cfg.logger.With(zap.String("root_id", r.id))

	b := &builder{factory: factory, ctx: ctx, arena: r.arena}
	viewNode, layoutNode, err := b.build(desc, "root")
	if err != nil {
		released := r.arena.releaseAll()
		r.log.Debug("build failed",
			zap.Error(err),
			zap.Int("released_views", released),
		)
		return nil, err
	}

	r.viewNode = viewNode
	r.layoutNode = layoutNode
	r.log.Debug("built root",
		zap.String("kind", desc.Kind),
		zap.Int("nodes", viewNode.Count()),
	)
	return r, nil
}

type builder struct {
	factory ViewFactory
	ctx     any
	arena   *arena
}

func (b *builder) build(d *ViewDescriptor, path string) (*ViewNode, *LayoutNode, error) {
	childViews := make([]*ViewNode, 0, len(d.Children))
	childLayouts := make([]*LayoutNode, 0, len(d.Children))
	for i, child := range d.Children {
		cv, cl, err := b.build(child, fmt.Sprintf("%s/children[%d]", path, i))
		if err != nil {
			return nil, nil, err
		}
		childViews = append(childViews, cv)
		childLayouts = append(childLayouts, cl)
	}

	view, err := b.factory.CreateView(b.ctx, d.Kind)
	if err != nil {
		return nil, nil, newError(ViewCreationError, d.Kind, path, err)
	}
	if view == nil {
		return nil, nil, newError(ViewCreationError, d.Kind, path, errors.New("factory returned a nil view"))
	}
	ref := b.arena.insert(view)

	for _, prop := range d.Props {
		if err := view.SetProp(prop.Key, prop.Value); err != nil {
			return nil, nil, newError(PropertyApplicationError, d.Kind, path, fmt.Errorf("prop %q: %w", prop.Key, err))
		}
	}

	for i, cv := range childViews {
		child, err := b.arena.get(cv.Ref)
		if err != nil {
			return nil, nil, newError(ChildAttachError, d.Kind, path, err)
		}
		if err := view.AddChild(child); err != nil {
			return nil, nil, newError(ChildAttachError, d.Kind, path, fmt.Errorf("child %d (%s): %w", i, cv.Kind, err))
		}
	}

	spec, err := compileStyle(d.Layout)
	if err != nil {
		return nil, nil, newError(SchemaError, d.Kind, path, err)
	}

	layoutNode := &LayoutNode{
		Style:    spec,
		Children: childLayouts,
		Measure:  b.arena.measureHook(ref, d.Kind, path),
	}
	return &ViewNode{Ref: ref, Kind: d.Kind, Children: childViews}, layoutNode, nil
}
