package timestamps

import "time"

// LocalizeHook observes each cell rewrite. Hooks run in registration order.
type LocalizeHook interface {
	BeforeLocalize(ctx *HookContext)
	AfterLocalize(ctx *HookContext)
}

type HookContext struct {
	Index    int
	Original string
	Time     time.Time
	Valid    bool
	Error    error
	Result   string
	Metadata map[string]any
}

func (ctx *HookContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

func (ctx *HookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

func (ctx *HookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

type HookFuncs struct {
	Before func(ctx *HookContext)
	After  func(ctx *HookContext)
}

func (h HookFuncs) BeforeLocalize(ctx *HookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h HookFuncs) AfterLocalize(ctx *HookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

func filterHooks(hooks []LocalizeHook) []LocalizeHook {
	if len(hooks) == 0 {
		return nil
	}
	filtered := make([]LocalizeHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}
	if len(filtered) == 0 {
		return nil
	}
	return filtered
}
