package conf

import (
	"fmt"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that provides a *Resolver for the given
// owner and path, named by the owner. A host built on Fx registers one
// module per plugin configuration and consumers depend on the named
// resolver:
//
//	fx.New(
//	    conf.NewModule("myplugin", []string{"settings"},
//	        conf.WithBaseDir(dirs), conf.WithDefaults(bundled)),
//	    fx.Invoke(fx.Annotate(useConfig, fx.ParamTags(`name:"myplugin"`))),
//	)
//
// Construction happens lazily when the container first needs the resolver;
// identity and construction errors surface as container errors.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(owner string, segments []string, opts ...Option) fx.Option {
	if owner == "" {
		return fx.Error(ErrEmptyOwner)
	}

	return fx.Module(owner,
		fx.Provide(
			fx.Annotate(
				func() (*Resolver, error) {
					identity, err := NewIdentity(owner, segments...)
					if err != nil {
						return nil, err
					}

					return Provide(identity, opts...)
				},
				fx.ResultTags(fmt.Sprintf(`name:%q`, owner)),
			),
		),
	)
}
