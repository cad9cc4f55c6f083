// Package wikifetch provides fetching and structured content extraction for
// Minecraft Wiki pages. Raw page markup is transformed into a sanitized,
// multi-format document: cleaned HTML, plain text, and a typed inventory of
// structural components (sections, images, tables, infoboxes, table of
// contents).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, chi/).
package wikifetch
