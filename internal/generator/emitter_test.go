package generator

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jpequegn/hbsbundle/internal/models"
)

func optsWith(mut func(*models.Options)) models.Options {
	o := models.DefaultOptions()
	mut(&o)
	return o
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name         string
		opts         models.Options
		files        int
		wantBody     Body
		wantEnvelope Envelope
	}{
		{name: "defaults", opts: models.DefaultOptions(), files: 2, wantBody: BodyNamespace, wantEnvelope: EnvelopeNone},
		{name: "plain", opts: optsWith(func(o *models.Options) { o.Namespace = models.NoNamespace() }), files: 2, wantBody: BodyPlain},
		{name: "namespace node", opts: optsWith(func(o *models.Options) { o.Node = true }), files: 1, wantBody: BodyNamespaceNode},
		{
			name:     "node single",
			opts:     optsWith(func(o *models.Options) { o.Node = true; o.Namespace = models.NoNamespace() }),
			files:    1,
			wantBody: BodyNode,
		},
		{
			name:     "node collector",
			opts:     optsWith(func(o *models.Options) { o.Node = true; o.Namespace = models.NoNamespace() }),
			files:    3,
			wantBody: BodyNodeCollector,
		},
		{name: "amd", opts: optsWith(func(o *models.Options) { o.AMD = true }), files: 1, wantBody: BodyNamespace, wantEnvelope: EnvelopeAMD},
		{name: "commonjs", opts: optsWith(func(o *models.Options) { o.CommonJS = true }), files: 1, wantBody: BodyNamespace, wantEnvelope: EnvelopeCommonJS},
		{
			name:         "amd and commonjs",
			opts:         optsWith(func(o *models.Options) { o.AMD = true; o.CommonJS = true }),
			files:        1,
			wantBody:     BodyNamespace,
			wantEnvelope: EnvelopeAMDCommonJS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ResolveMode(tt.opts, tt.files)
			if m.Body != tt.wantBody {
				t.Errorf("Body = %v, want %v", m.Body, tt.wantBody)
			}
			if m.Envelope != tt.wantEnvelope {
				t.Errorf("Envelope = %v, want %v", m.Envelope, tt.wantEnvelope)
			}
		})
	}
}

func TestMode_TemplateFragment(t *testing.T) {
	noNS := func(o *models.Options) { o.Namespace = models.NoNamespace() }

	tests := []struct {
		name  string
		opts  models.Options
		files int
		want  string
	}{
		{name: "namespace", opts: models.DefaultOptions(), files: 2, want: `this["JST"]["a.hbs"] = X;`},
		{name: "bare", opts: optsWith(noNS), files: 2, want: `X`},
		{
			name:  "commonjs collector",
			opts:  optsWith(func(o *models.Options) { noNS(o); o.CommonJS = true }),
			files: 2,
			want:  `templates["a.hbs"] = X;`,
		},
		{
			name:  "node collector",
			opts:  optsWith(func(o *models.Options) { noNS(o); o.Node = true }),
			files: 2,
			want:  `templates["a.hbs"] = X;`,
		},
		{
			name:  "commonjs single",
			opts:  optsWith(func(o *models.Options) { noNS(o); o.CommonJS = true; o.Node = true }),
			files: 1,
			want:  `templates = X;`,
		},
		{
			name:  "node single",
			opts:  optsWith(func(o *models.Options) { noNS(o); o.Node = true }),
			files: 1,
			want:  `module.exports = X;`,
		},
		{name: "plain single", opts: optsWith(noNS), files: 1, want: `X`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveMode(tt.opts, tt.files).TemplateFragment("a.hbs", "X")
			if got != tt.want {
				t.Errorf("TemplateFragment() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMode_PartialFragment(t *testing.T) {
	plain := ResolveMode(models.DefaultOptions(), 1).PartialFragment("nav", "X")
	if want := `Handlebars.registerPartial("nav", X);`; plain != want {
		t.Errorf("PartialFragment() = %q, want %q", plain, want)
	}

	ns := ResolveMode(optsWith(func(o *models.Options) { o.PartialsUseNamespace = true }), 1).PartialFragment("nav", "X")
	if want := `Handlebars.registerPartial("nav", this["JST"]["nav"] = X);`; ns != want {
		t.Errorf("PartialFragment() with namespace = %q, want %q", ns, want)
	}
}

func TestEmit_Layouts(t *testing.T) {
	noNS := func(o *models.Options) { o.Namespace = models.NoNamespace() }
	partials := []string{"P1", "P2"}
	templates := []string{"T1", "T2"}

	tests := []struct {
		name  string
		opts  models.Options
		files int
		want  []string
	}{
		{
			name:  "plain",
			opts:  optsWith(noNS),
			files: 4,
			want:  []string{"P1", "P2", "T1", "T2"},
		},
		{
			name:  "nested namespace",
			opts:  optsWith(func(o *models.Options) { o.Namespace = models.NamedNamespace("App.Templates") }),
			files: 4,
			want: []string{
				`this["App"] = this["App"] || {};` + "\n" + `this["App"]["Templates"] = this["App"]["Templates"] || {};`,
				"P1", "P2", "T1", "T2",
			},
		},
		{
			name:  "namespace node",
			opts:  optsWith(func(o *models.Options) { o.Node = true }),
			files: 4,
			want: []string{
				"var glob = ('undefined' === typeof window) ? global : window,",
				"Handlebars = glob.Handlebars || require('handlebars');",
				`this["JST"] = this["JST"] || {};`,
				"P1", "P2", "T1", "T2",
				`if (typeof exports === 'object' && exports) {module.exports = this["JST"];}`,
			},
		},
		{
			name:  "node single file",
			opts:  optsWith(func(o *models.Options) { noNS(o); o.Node = true }),
			files: 1,
			want:  []string{"var Handlebars = require('handlebars');", "P1", "P2", "T1", "T2"},
		},
		{
			name:  "node collector",
			opts:  optsWith(func(o *models.Options) { noNS(o); o.Node = true }),
			files: 4,
			want: []string{
				"var Handlebars = require('handlebars');",
				"var templates = {};",
				"P1", "P2", "T1", "T2",
				"module.exports = templates;",
			},
		},
		{
			name:  "amd without namespace",
			opts:  optsWith(func(o *models.Options) { noNS(o); o.AMD = true }),
			files: 4,
			want: []string{
				"define(['handlebars'], function(Handlebars) {",
				"P1", "P2", "T1", "T2",
				"});",
			},
		},
		{
			name:  "commonjs without namespace",
			opts:  optsWith(func(o *models.Options) { noNS(o); o.CommonJS = true }),
			files: 4,
			want: []string{
				"module.exports = function(Handlebars) {",
				"var templates = {};",
				"P1", "P2", "T1", "T2",
				"return templates;",
				"};",
			},
		},
		{
			name:  "commonjs with namespace",
			opts:  optsWith(func(o *models.Options) { o.CommonJS = true }),
			files: 4,
			want: []string{
				"module.exports = function(Handlebars) {",
				`this["JST"] = this["JST"] || {};`,
				"P1", "P2", "T1", "T2",
				`return this["JST"];`,
				"};",
			},
		},
		{
			name:  "amd inside commonjs with namespace",
			opts:  optsWith(func(o *models.Options) { o.AMD = true; o.CommonJS = true }),
			files: 4,
			want: []string{
				"module.exports = function(Handlebars) {",
				"define(['handlebars'], function(Handlebars) {",
				`this["JST"] = this["JST"] || {};`,
				"P1", "P2", "T1", "T2",
				`return this["JST"];`,
				"});",
				`return this["JST"];`,
				"};",
			},
		},
		{
			name:  "every wrapper without namespace",
			opts:  optsWith(func(o *models.Options) { noNS(o); o.AMD = true; o.CommonJS = true; o.Node = true }),
			files: 4,
			want: []string{
				"module.exports = function(Handlebars) {",
				"var templates = {};",
				"define(['handlebars'], function(Handlebars) {",
				"var Handlebars = require('handlebars');",
				"var templates = {};",
				"P1", "P2", "T1", "T2",
				"module.exports = templates;",
				"});",
				"return templates;",
				"};",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Emit(ResolveMode(tt.opts, tt.files), partials, templates, "\n")
			if !ok {
				t.Fatal("Emit() reported empty output")
			}
			if diff := cmp.Diff(strings.Join(tt.want, "\n"), got); diff != "" {
				t.Errorf("Emit() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEmit_Empty(t *testing.T) {
	got, ok := Emit(ResolveMode(models.DefaultOptions(), 0), nil, nil, "\n\n")
	if ok || got != "" {
		t.Errorf("Emit() = (%q, %v), want empty", got, ok)
	}
}

func TestEmit_PartialsBeforeTemplates(t *testing.T) {
	m := ResolveMode(optsWith(func(o *models.Options) { o.Namespace = models.NoNamespace() }), 4)
	got, _ := Emit(m, []string{"p1", "p2"}, []string{"t1", "t2"}, ",")
	if want := "p1,p2,t1,t2"; got != want {
		t.Errorf("Emit() = %q, want %q", got, want)
	}
}

func TestEmit_SeparatorLineEndings(t *testing.T) {
	m := ResolveMode(optsWith(func(o *models.Options) { o.Namespace = models.NoNamespace() }), 2)
	got, _ := Emit(m, nil, []string{"a", "b"}, "\r\n\r\n")
	if want := "a\n\nb"; got != want {
		t.Errorf("Emit() = %q, want %q", got, want)
	}
}
