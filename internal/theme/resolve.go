package theme

// Override is a partial Theme. Nil pointers leave the base value in place;
// non-nil pointers replace it, including with the empty string.
type Override struct {
	Table          *TableOverride          `yaml:"table,omitempty" json:"table,omitempty"`
	Pagination     *PaginationOverride     `yaml:"pagination,omitempty" json:"pagination,omitempty"`
	PaginationInfo *PaginationInfoOverride `yaml:"paginationInfo,omitempty" json:"paginationInfo,omitempty"`
}

// TableOverride is a partial Table.
type TableOverride struct {
	TableClass     *string `yaml:"tableClass,omitempty" json:"tableClass,omitempty"`
	AscendingIcon  *string `yaml:"ascendingIcon,omitempty" json:"ascendingIcon,omitempty"`
	DescendingIcon *string `yaml:"descendingIcon,omitempty" json:"descendingIcon,omitempty"`
	SortableIcon   *string `yaml:"sortableIcon,omitempty" json:"sortableIcon,omitempty"`
	HandleIcon     *string `yaml:"handleIcon,omitempty" json:"handleIcon,omitempty"`
	HandleClass    *string `yaml:"handleClass,omitempty" json:"handleClass,omitempty"`
	CheckboxClass  *string `yaml:"checkboxClass,omitempty" json:"checkboxClass,omitempty"`

	// RenderIcon replaces the base renderer as a whole when set.
	RenderIcon IconRenderer `yaml:"-" json:"-"`
}

// PaginationOverride is a partial Pagination.
type PaginationOverride struct {
	WrapperClass  *string                  `yaml:"wrapperClass,omitempty" json:"wrapperClass,omitempty"`
	ActiveClass   *string                  `yaml:"activeClass,omitempty" json:"activeClass,omitempty"`
	DisabledClass *string                  `yaml:"disabledClass,omitempty" json:"disabledClass,omitempty"`
	PageClass     *string                  `yaml:"pageClass,omitempty" json:"pageClass,omitempty"`
	LinkClass     *string                  `yaml:"linkClass,omitempty" json:"linkClass,omitempty"`
	Icons         *PaginationIconsOverride `yaml:"icons,omitempty" json:"icons,omitempty"`
}

// PaginationIconsOverride is a partial PaginationIcons.
type PaginationIconsOverride struct {
	First *string `yaml:"first,omitempty" json:"first,omitempty"`
	Prev  *string `yaml:"prev,omitempty" json:"prev,omitempty"`
	Next  *string `yaml:"next,omitempty" json:"next,omitempty"`
	Last  *string `yaml:"last,omitempty" json:"last,omitempty"`
}

// PaginationInfoOverride is a partial PaginationInfo.
type PaginationInfoOverride struct {
	InfoClass *string `yaml:"infoClass,omitempty" json:"infoClass,omitempty"`
}

// Resolve merges override onto base and returns the result as a new value.
// Neither input is modified. Leaves are replaced, never appended to, and the
// icon renderer is treated as a single leaf.
func Resolve(base Theme, override *Override) Theme {
	out := base
	if override == nil {
		return out
	}

	if o := override.Table; o != nil {
		set(&out.Table.TableClass, o.TableClass)
		set(&out.Table.AscendingIcon, o.AscendingIcon)
		set(&out.Table.DescendingIcon, o.DescendingIcon)
		set(&out.Table.SortableIcon, o.SortableIcon)
		set(&out.Table.HandleIcon, o.HandleIcon)
		set(&out.Table.HandleClass, o.HandleClass)
		set(&out.Table.CheckboxClass, o.CheckboxClass)
		if o.RenderIcon != nil {
			out.Table.RenderIcon = o.RenderIcon
		}
	}

	if o := override.Pagination; o != nil {
		set(&out.Pagination.WrapperClass, o.WrapperClass)
		set(&out.Pagination.ActiveClass, o.ActiveClass)
		set(&out.Pagination.DisabledClass, o.DisabledClass)
		set(&out.Pagination.PageClass, o.PageClass)
		set(&out.Pagination.LinkClass, o.LinkClass)
		if icons := o.Icons; icons != nil {
			set(&out.Pagination.Icons.First, icons.First)
			set(&out.Pagination.Icons.Prev, icons.Prev)
			set(&out.Pagination.Icons.Next, icons.Next)
			set(&out.Pagination.Icons.Last, icons.Last)
		}
	}

	if o := override.PaginationInfo; o != nil {
		set(&out.PaginationInfo.InfoClass, o.InfoClass)
	}

	return out
}

func set(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// String returns a pointer to s, for building overrides in code.
func String(s string) *string {
	return &s
}
