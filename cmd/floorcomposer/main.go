// Command floorcomposer generates 2D construction profiles (steel deck
// corrugations, composite floor build-ups) and writes them to SVG, JSON,
// DXF, PDF, and XLSX.
package main

func main() {
	Execute()
}
