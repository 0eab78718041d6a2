// Package config loads hbsbundle task files.
//
// A task file holds task-wide options and a list of named targets. Each
// target may override options and lists the file groups it compiles. YAML,
// TOML and HCL files are supported; the format is chosen by extension.
//
//	options:
//	  namespace: App.Templates
//	targets:
//	  - name: app
//	    options:
//	      amd: true
//	    files:
//	      - src: ["templates/*.hbs", "!templates/_draft.hbs"]
//	        dest: build/templates.js
package config
