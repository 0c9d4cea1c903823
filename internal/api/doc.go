// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

/*
Package api exposes the catalog, pricing, cart and recommendation services
over HTTP using the Chi router.

# Routes

	GET    /health                                          liveness and catalog version
	GET    /metrics                                         Prometheus
	GET    /api/v1/items/{itemID}                           item snapshot
	POST   /api/v1/items/{itemID}/validate                  validate selections
	POST   /api/v1/items/{itemID}/quote                     price selections
	GET    /api/v1/items/{itemID}/recommendations           item to item
	POST   /api/v1/packages/{packageID}/quote               package totals and savings
	GET    /api/v1/packages/{packageID}/recommendations/items
	GET    /api/v1/packages/{packageID}/recommendations/packages
	GET    /api/v1/carts/{sessionID}                        cart with total
	POST   /api/v1/carts/{sessionID}/lines                  add an item
	DELETE /api/v1/carts/{sessionID}/lines/{lineID}         remove a line
	DELETE /api/v1/carts/{sessionID}                        clear the cart

# Selections

Request bodies carry selections as references that are resolved against the
item before validation. A reference is either a legacy display name or an
object naming an id:

	{"selections": [
	    {"customization": "Spice Level", "options": ["Hot"]},
	    {"customization": {"id": "toppings"}, "options": [{"id": "egg"}]},
	    {"customization": "Kitchen Note", "text": "no peanuts"}
	]}

A reference that matches nothing, or more than one definition, is rejected
with 422 CONFIGURATION_ERROR. Selections that resolve but break the item's
rules are rejected with 422 INVALID_SELECTION and the full violation list in
error.details.violations.

# Responses

Every response uses the models.APIResponse envelope. Errors map as follows:

	400 VALIDATION_ERROR, INVALID_JSON    malformed request
	404 NOT_FOUND                         unknown item, package or line
	409 CART_FULL                         cart line limit reached
	422 INVALID_SELECTION                 customization rule violations
	422 CONFIGURATION_ERROR               unresolvable reference
	422 COMPUTATION_ERROR                 invalid price inputs
	422 QUANTITY_LIMIT                    quantity above the cart limit
	429 RATE_LIMIT_EXCEEDED               httprate rejection
	503 STORE_UNAVAILABLE                 store circuit breaker open
*/
package api
