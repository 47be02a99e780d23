/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package schema

// DirectiveLocation specifies a valid location for a directive to be used.
type DirectiveLocation string

// Reference: https://facebook.github.io/graphql/June2018/#DirectiveLocations
const (
	// Request Definitions
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation           DirectiveLocation = "MUTATION"
	DirectiveLocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	DirectiveLocationField              DirectiveLocation = "FIELD"
	DirectiveLocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"
	DirectiveLocationVariableDefinition DirectiveLocation = "VARIABLE_DEFINITION"

	// Type System Definitions
	DirectiveLocationSchema               DirectiveLocation = "SCHEMA"
	DirectiveLocationScalar               DirectiveLocation = "SCALAR"
	DirectiveLocationObject               DirectiveLocation = "OBJECT"
	DirectiveLocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            DirectiveLocation = "INTERFACE"
	DirectiveLocationUnion                DirectiveLocation = "UNION"
	DirectiveLocationEnum                 DirectiveLocation = "ENUM"
	DirectiveLocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	DirectiveLocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

var directiveLocations = map[string]DirectiveLocation{}

func init() {
	for _, loc := range []DirectiveLocation{
		DirectiveLocationQuery,
		DirectiveLocationMutation,
		DirectiveLocationSubscription,
		DirectiveLocationField,
		DirectiveLocationFragmentDefinition,
		DirectiveLocationFragmentSpread,
		DirectiveLocationInlineFragment,
		DirectiveLocationVariableDefinition,
		DirectiveLocationSchema,
		DirectiveLocationScalar,
		DirectiveLocationObject,
		DirectiveLocationFieldDefinition,
		DirectiveLocationArgumentDefinition,
		DirectiveLocationInterface,
		DirectiveLocationUnion,
		DirectiveLocationEnum,
		DirectiveLocationEnumValue,
		DirectiveLocationInputObject,
		DirectiveLocationInputFieldDefinition,
	} {
		directiveLocations[string(loc)] = loc
	}
}

// DirectiveLocationFromName maps a location name (e.g., "FIELD") to the DirectiveLocation.
func DirectiveLocationFromName(name string) (DirectiveLocation, bool) {
	loc, ok := directiveLocations[name]
	return loc, ok
}
