// Package tab models the application tab bar shared by the front-ends.
package tab
