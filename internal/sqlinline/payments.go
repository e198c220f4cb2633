package sqlinline

const QUpsertPayment = `--sql 8707727c-2a0d-487a-9f2a-53e1776bb308
insert into payments (id, date, amount, contributor_id)
values ($1::text, $2::date, $3::double precision, $4::text)
on conflict (id) do nothing;
`

const QOwnerRecordedSum = `--sql 61382b72-0595-4b86-879f-98eacfa6bf70
select coalesce(sum(amount), 0)
from payments
where contributor_id = $1::text;
`

const QListRecentPayments = `--sql 235e1ffb-c9cf-49a8-a2b4-6b106630b831
select id, date, amount, contributor_id
from payments
order by date desc, id
limit $1::int;
`

const QListPaymentsByContributor = `--sql 8d971ed5-4487-4314-a9cf-3945b7a2a027
select id, date, amount, contributor_id
from payments
where contributor_id = $1::text
order by date desc, id
limit $2::int;
`
