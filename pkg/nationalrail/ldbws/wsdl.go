package ldbws

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/beevik/etree"
)

// soapPortName is the WSDL port whose address we want. The descriptor
// also declares a SOAP 1.2 port; the envelope codec here speaks 1.1.
const soapPortName = "LDBServiceSoap"

// resolveEndpoint fetches the WSDL and returns the location of the SOAP
// port. This is the session's one-time descriptor fetch; it is the slow
// part of construction.
func resolveEndpoint(client *http.Client, wsdlURL string) (string, error) {
	resp, err := client.Get(wsdlURL)
	if err != nil {
		return "", fmt.Errorf("fetching WSDL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching WSDL: unexpected status code: %d", resp.StatusCode)
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return "", fmt.Errorf("parsing WSDL: %w", err)
	}

	// etree paths match local names, so wsdl:port is found as "port"
	// whatever prefix the document uses.
	var fallback string
	for _, port := range doc.FindElements("//service/port") {
		addr := port.SelectElement("address")
		if addr == nil {
			continue
		}
		location := addr.SelectAttrValue("location", "")
		if location == "" {
			continue
		}
		if port.SelectAttrValue("name", "") == soapPortName {
			return location, nil
		}
		if fallback == "" {
			fallback = location
		}
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", errors.New("parsing WSDL: no SOAP port address found")
}
