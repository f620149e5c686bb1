/*

Package gconf implements loading of configuration sections from a JSON
document.

A configuration file holds a "conf" object with one section per package:

	{
	  "conf": {
	    "escrow": { ... }
	  }
	}

Each package decodes its own section into a structure that knows how to
validate itself. Unknown attributes are rejected so that a typo in a
configuration file is not silently ignored.

Not being able to load a configuration is a critical condition for the
application and there is no recovery path for the client. The application
must be configured correctly before it can be used.

*/
package gconf
