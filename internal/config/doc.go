// Package config provides configuration parsing for obaquery.
//
// # Configuration File
//
// Configuration is YAML:
//
//	directory:
//	  baseDN: "dc=example,dc=com"
//	  scope: sub
//	  derefAliases: never
//	  sizeLimit: 100
//	  timeLimit: 30s
//	  attributes: [cn, mail]
//
//	logging:
//	  level: info
//	  format: text
//	  output: stderr
//
// # Loading
//
//	cfg, err := config.LoadConfig("/etc/obaquery/config.yaml")
//	if err != nil {
//	    return err
//	}
//
// Keys missing from the file keep their DefaultConfig values. Unknown
// keys are an error.
//
// # Validation
//
//	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
//	    for _, err := range errs {
//	        fmt.Println(err)
//	    }
//	}
package config
