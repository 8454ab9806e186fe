// Package panorama manipulates Palo Alto Panorama XML configuration
// exports: loading and saving the document tree, locating security rule
// sections under shared or device-group rule bases, and reordering the
// rule entries inside one section.
//
// Documents with and without an XML namespace prefix resolve the same
// structural paths; the prefix is probed once from the root element at
// load time.
package panorama
