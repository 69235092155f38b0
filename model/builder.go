package model

import (
	"sort"
	"strings"

	"github.com/sebastian-peter/tscfg/annotation"
	"github.com/sebastian-peter/tscfg/hocon"
	"github.com/sebastian-peter/tscfg/keypath"
	"github.com/sebastian-peter/tscfg/namespace"
	"github.com/sebastian-peter/tscfg/structtree"
	"github.com/sebastian-peter/tscfg/typespec"
)

// Namespace is the scoped define registry threaded through Build,
// specialized to the IR's own Type.
type Namespace = namespace.Namespace[Type]

// Result is the output of Build: the root object type plus any warnings
// collected along the way.
type Result struct {
	Root     *ObjectType
	Warnings []Warning
}

// Option configures a Build call.
type Option func(*builder)

// AssumeAllRequired makes every field optional=false and default=None
// regardless of DSL/comment hints.
func AssumeAllRequired() Option {
	return func(b *builder) { b.assumeAllRequired = true }
}

// Build runs the model builder over conf's root, with a fresh root
// namespace and warnings buffer for this call only.
func Build(conf *hocon.Config, opts ...Option) (*Result, error) {
	b := &builder{}

	for _, opt := range opts {
		opt(b)
	}

	root, err := b.fromConfig(namespace.New[Type](), conf)
	if err != nil {
		return nil, err
	}

	return &Result{Root: root, Warnings: b.warnings.Sorted()}, nil
}

type builder struct {
	assumeAllRequired bool
	warnings          Warnings
}

// child is one enriched member of an object being built: a Struct tree
// node paired with the DefineCase its comments carried, if any.
type child struct {
	name   string
	leaf   bool
	define *annotation.DefineCase
}

// fromConfig is the recursive heart of the model builder: it folds one
// Config level into an ObjectType, recursing into nested objects.
func (b *builder) fromConfig(ns *Namespace, conf *hocon.Config) (*ObjectType, error) {
	entries := conf.EntrySet()
	paths := make([]string, len(entries))

	for i, e := range entries {
		paths[i] = e.Path
	}

	tree := structtree.Build(paths)

	children := make([]child, 0, len(tree.Members))

	for _, m := range tree.Members {
		cv, ok := conf.GetValue(m.Name)
		if !ok {
			continue
		}

		dc, err := annotation.ReadDefine(m.Name, cv.Origin().Comments)
		if err != nil {
			return nil, err
		}

		children = append(children, child{name: m.Name, leaf: m.IsLeaf(), define: dc})
	}

	// Stable reorder: every shared (defined) struct precedes every
	// non-shared struct, so later siblings can resolve references to
	// defines.
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].define != nil && children[j].define == nil
	})

	members := make([]Member, 0, len(children))

	for _, c := range children {
		cv, _ := conf.GetValue(c.name)

		ann, err := b.buildField(ns, c, cv)
		if err != nil {
			return nil, err
		}

		if c.define != nil {
			ns.AddDefine(c.name, ann.T, c.define.IsParent())
		}

		if _, abstract := ann.T.(*AbstractObjectType); abstract {
			// A purely parent-class placeholder; it never requires
			// instantiation.
			continue
		}

		members = append(members, Member{Name: keypath.AdjustName(c.name), Ann: ann})
	}

	return &ObjectType{Members: members}, nil
}

// buildField computes one field's AnnType: its type, optionality, default,
// comments, and any parent-class members it carries.
func (b *builder) buildField(ns *Namespace, c child, cv *hocon.Value) (*AnnType, error) {
	var (
		childType Type
		optional  bool
		def       *string
		err       error
	)

	if c.leaf {
		isEnum := c.define != nil && c.define.IsEnum()
		childType, optional, def, err = b.classifyLeaf(ns, cv, isEnum)
	} else {
		childType, err = b.fromConfig(ns.Extend(c.name), cv.AsConfig())
	}

	if err != nil {
		return nil, err
	}

	comments := cv.Origin().Comments

	var commentsOpt *string

	if len(comments) > 0 {
		joined := strings.Join(comments, "\n")
		commentsOpt = &joined
	}

	effOptional, effDefault := optional || annotation.OptFromComments(comments), def
	if b.assumeAllRequired {
		effOptional, effDefault = false, nil
	}

	parentMembers, err := b.resolveParentMembers(ns, c)
	if err != nil {
		return nil, err
	}

	// Replace with AbstractObjectType only when the struct itself carries
	// "@define abstract" (not merely "@define extends", which is also a
	// parent-marking comment but names a concrete subclass).
	if obj, ok := childType.(*ObjectType); ok && c.define != nil && c.define.Kind == annotation.Abstract {
		childType = &AbstractObjectType{Members: obj.Members}
	}

	return &AnnType{
		T:                  childType,
		Optional:           effOptional,
		Default:            effDefault,
		Comments:           commentsOpt,
		ParentClassMembers: parentMembers,
	}, nil
}

// resolveParentMembers resolves a field's "@define extends P" directive:
// P must be currently visible in the namespace and registered as an
// abstract define.
func (b *builder) resolveParentMembers(ns *Namespace, c child) ([]Member, error) {
	if c.define == nil || c.define.Kind != annotation.Extends {
		return nil, nil
	}

	parent := c.define.Parent

	abs, found := ns.GetAbstractDefine(parent)
	if !found {
		if _, exists := ns.ResolveDefine(parent); exists {
			return nil, &ExtendsError{Field: c.name, Parent: parent, Reason: "not an abstract define"}
		}

		return nil, &ExtendsError{Field: c.name, Parent: parent, Reason: "not visible in namespace"}
	}

	abstractType, ok := abs.(*AbstractObjectType)
	if !ok {
		return nil, &ExtendsError{Field: c.name, Parent: parent, Reason: "not an abstract define"}
	}

	return abstractType.Members, nil
}

// classifyLeaf dispatches on a leaf value's raw kind to compute its type,
// optionality, and default.
func (b *builder) classifyLeaf(ns *Namespace, cv *hocon.Value, isEnum bool) (Type, bool, *string, error) {
	switch cv.ValueType() {
	case hocon.KindString:
		s := cv.UnwrappedString()

		if t, ok := ns.ResolveDefine(s); ok {
			return t, false, nil, nil
		}

		if spec, ok := typespec.ParseSpec(s); ok {
			return Basic{spec.Type}, spec.Optional, spec.Default, nil
		}

		return Basic{typespec.BasicType{Kind: typespec.KindString}}, true, ptr(s), nil

	case hocon.KindBoolean:
		return Basic{typespec.BasicType{Kind: typespec.KindBoolean}}, true, ptr(cv.UnwrappedString()), nil

	case hocon.KindNumber:
		bt, err := typespec.NarrowNumeric(cv.UnwrappedString())
		if err != nil {
			return nil, false, nil, err
		}

		return Basic{bt}, true, ptr(cv.UnwrappedString()), nil

	case hocon.KindList:
		return b.classifyList(ns, cv, isEnum)

	case hocon.KindObject:
		nested, err := b.fromConfig(ns, cv.AsConfig())

		return nested, false, nil, err

	default: // hocon.KindNull
		return nil, false, nil, ErrNullValue
	}
}

// classifyList types a list leaf: an enum-tagged list yields an
// EnumObjectType from its elements, otherwise the list's first element
// decides the element type (warning when more than one element is
// present).
func (b *builder) classifyList(ns *Namespace, cv *hocon.Value, isEnum bool) (Type, bool, *string, error) {
	elems := cv.Elements()
	if len(elems) == 0 {
		return nil, false, nil, ErrEmptyList
	}

	if isEnum {
		values := make([]string, len(elems))
		for i, e := range elems {
			values[i] = e.UnwrappedString()
		}

		return &EnumObjectType{Values: values}, false, nil, nil
	}

	if len(elems) > 1 {
		b.warnings.Add(MultElemListWarning(cv.Origin().Line, cv.Render()))
	}

	elemType, optWarn, defWarn, err := b.classifyListElement(ns, elems[0])
	if err != nil {
		return nil, false, nil, err
	}

	if optWarn {
		b.warnings.Add(OptListElemWarning(cv.Origin().Line, cv.Render()))
	}

	if defWarn {
		b.warnings.Add(DefaultListElemWarning(cv.Origin().Line, cv.Render()))
	}

	return &ListType{Element: elemType}, false, nil, nil
}

// classifyListElement types a list's first element by the same dispatch
// leaves use, reporting whether the DSL parse (when it applies) carried
// optionality or a default — properties a list element can't itself
// express.
func (b *builder) classifyListElement(ns *Namespace, v *hocon.Value) (Type, bool, bool, error) {
	switch v.ValueType() {
	case hocon.KindString:
		s := v.UnwrappedString()

		if t, ok := ns.ResolveDefine(s); ok {
			return t, false, false, nil
		}

		if spec, ok := typespec.ParseSpec(s); ok {
			return Basic{spec.Type}, spec.Optional, spec.Default != nil, nil
		}

		return Basic{typespec.BasicType{Kind: typespec.KindString}}, false, false, nil

	case hocon.KindBoolean:
		return Basic{typespec.BasicType{Kind: typespec.KindBoolean}}, false, false, nil

	case hocon.KindNumber:
		bt, err := typespec.NarrowNumeric(v.UnwrappedString())

		return Basic{bt}, false, false, err

	case hocon.KindObject:
		nested, err := b.fromConfig(ns, v.AsConfig())

		return nested, false, false, err

	default:
		// Nested lists and null elements have no dedicated element type;
		// fall back to the raw string kind rather than reject the input.
		return Basic{typespec.BasicType{Kind: typespec.KindString}}, false, false, nil
	}
}

func ptr(s string) *string {
	return &s
}
