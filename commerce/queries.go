package commerce

// GraphQL documents sent to the vendor storefront API. The response shapes
// are the vendor's contract; only the fields listed in types.go are read.

const productFields = `
	id
	title
	description
	handle
	images { src altText }
	variants {
		id
		title
		price { amount currencyCode }
		compareAtPrice { amount currencyCode }
		availableForSale
	}
	tags
	productType
	vendor
`

const cartFields = `
	id
	webUrl
	lineItems {
		id
		quantity
		variant {
			id
			title
			price { amount currencyCode }
			product { id title handle images { src } }
		}
	}
	subtotalPrice { amount currencyCode }
	totalPrice { amount currencyCode }
`

const queryProducts = `
query products($first: Int!) {
	products(first: $first) {` + productFields + `}
}`

const queryProductByHandle = `
query productByHandle($handle: String!) {
	productByHandle(handle: $handle) {` + productFields + `}
}`

const querySearchProducts = `
query searchProducts($query: String!, $first: Int!) {
	products(first: $first, query: $query) {` + productFields + `}
}`

const queryCart = `
query cart($id: ID!) {
	cart(id: $id) {` + cartFields + `}
}`

const mutationCartCreate = `
mutation cartCreate {
	cartCreate { cart {` + cartFields + `} }
}`

const mutationCartLinesAdd = `
mutation cartLinesAdd($cartId: ID!, $variantId: ID!, $quantity: Int!) {
	cartLinesAdd(cartId: $cartId, lines: [{merchandiseId: $variantId, quantity: $quantity}]) {
		cart {` + cartFields + `}
	}
}`

const mutationCartLinesUpdate = `
mutation cartLinesUpdate($cartId: ID!, $lineId: ID!, $quantity: Int!) {
	cartLinesUpdate(cartId: $cartId, lines: [{id: $lineId, quantity: $quantity}]) {
		cart {` + cartFields + `}
	}
}`

const mutationCartLinesRemove = `
mutation cartLinesRemove($cartId: ID!, $lineId: ID!) {
	cartLinesRemove(cartId: $cartId, lineIds: [$lineId]) {
		cart {` + cartFields + `}
	}
}`
